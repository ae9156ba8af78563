package app

import "strings"

// fillerTokens are Korean particles, conjunctions, intensifiers, emoticon
// runs and repeated punctuation stripped before text reaches the model.
// Replacement is literal substring matching, not word-boundary aware: a
// token inside a longer word is stripped too. Accepted lossy trade-off for
// token-budget savings.
var fillerTokens = []string{
	"이", "가", "을", "를", "은", "는", "에", "의", "로", "와", "과", "도", "만",
	"에서", "으로", "하고", "그리고", "또한", "그런데", "하지만", "그래서", "그러나",
	"또", "더", "매우", "정말", "진짜", "너무", "아주", "굉장히", "엄청", "완전",
	"ㅋㅋ", "ㅎㅎ", "ㅠㅠ", "ㅜㅜ", "...", "..", "!", "?", "~",
}

var fillerReplacer = newFillerReplacer()

func newFillerReplacer() *strings.Replacer {
	pairs := make([]string, 0, len(fillerTokens)*2)
	for _, tok := range fillerTokens {
		pairs = append(pairs, tok, " ")
	}
	return strings.NewReplacer(pairs...)
}

// Normalize strips every filler-token occurrence, collapses whitespace runs
// to single spaces and trims. Idempotent.
func Normalize(text string) string {
	cleaned := fillerReplacer.Replace(text)
	return strings.Join(strings.Fields(cleaned), " ")
}
