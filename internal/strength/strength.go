// Package strength rates generated secrets. Generators never call it; the
// service attaches a rating when a client asks for one.
package strength

import (
	"github.com/nbutton23/zxcvbn-go"
)

// Result is a 0-4 score with human readable feedback.
type Result struct {
	Score     int     `json:"score"`
	Entropy   float64 `json:"entropy"`
	CrackTime string  `json:"crackTime"`
	Feedback  string  `json:"feedback"`
}

// Scorer rates a secret.
type Scorer interface {
	Score(secret string) Result
}

var feedback = [...]string{
	"too guessable: risky password",
	"very guessable: protection from throttled online attacks",
	"somewhat guessable: protection from unthrottled online attacks",
	"safely unguessable: moderate protection from offline slow-hash scenarios",
	"very unguessable: strong protection from offline slow-hash scenarios",
}

// ZxcvbnScorer rates secrets with zxcvbn.
type ZxcvbnScorer struct {
	userInputs []string
}

// NewZxcvbnScorer creates a scorer that also penalises userInputs, such as
// an application name, when they appear in a secret.
func NewZxcvbnScorer(userInputs ...string) *ZxcvbnScorer {
	return &ZxcvbnScorer{userInputs: userInputs}
}

func (z *ZxcvbnScorer) Score(secret string) Result {
	m := zxcvbn.PasswordStrength(secret, z.userInputs)

	score := min(max(m.Score, 0), len(feedback)-1)
	return Result{
		Score:     score,
		Entropy:   m.Entropy,
		CrackTime: m.CrackTimeDisplay,
		Feedback:  feedback[score],
	}
}
