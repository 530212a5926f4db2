// Package entity はquizフィーチャーのドメインエンティティを定義します。
package entity

// Spec はクイズ生成のパラメータ一式です。キャッシュキーの単位でもあります。
type Spec struct {
	Topic        string
	Grade        string
	Difficulty   string
	NumQuestions int
}

// Explanation は1問分の採点結果です。
type Explanation struct {
	Question      string `json:"question"`
	CorrectAnswer string `json:"correctAnswer"`
	Explanation   string `json:"explanation"`
}

// Evaluation はAIによる採点結果全体です。
// 外部AIの応答をこの形に厳密にパースし、形が合わない応答は拒否します。
type Evaluation struct {
	CorrectCount int           `json:"correctCount"`
	Score        int           `json:"score"`
	Explanations []Explanation `json:"explanations"`
}
