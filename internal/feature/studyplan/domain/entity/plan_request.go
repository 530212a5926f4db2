// Package entity はstudyplanフィーチャーのドメインモデルを定義します。
package entity

// PlanRequest は学習計画を生成するための入力です。
type PlanRequest struct {
	Subject    string // 科目
	Chapters   string // 対象の章（自由記述）
	Deadline   string // 期限（自由記述、例: "2 weeks"）
	Marks      string // 直近の成績（パーセント）
	StudyHours string // 確保できる学習時間
}
