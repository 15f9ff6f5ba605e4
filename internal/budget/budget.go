package budget

import (
	"math"
	"strings"
)

// EstimateTokensFromChars converts a character count into an estimated token
// count using a conservative heuristic (~4 chars per token in English). The
// result is always at least 1 when chars > 0.
func EstimateTokensFromChars(charCount int) int {
	if charCount <= 0 {
		return 0
	}
	// Keep conservative to avoid overruns. Use ceiling for safety.
	return int(math.Ceil(float64(charCount) / 4.0))
}

// EstimateTokens returns the estimated token count of a string.
func EstimateTokens(s string) int {
	return EstimateTokensFromChars(len(s))
}

// minPartialTokens is the smallest remaining budget worth filling with a
// truncated chunk; anything less is dropped instead.
const minPartialTokens = 100

// ChunkUsage records how one chunk contributed to the assembled document.
type ChunkUsage struct {
	Index     int
	Tokens    int
	Truncated bool
}

// Assemble joins document chunks in order until the token budget is
// exhausted. The last included chunk may be partial when a meaningful amount
// of budget remains. It returns the combined text, one usage entry per
// included chunk, and the estimated token total. maxTokens <= 0 disables the
// budget.
func Assemble(chunks []string, maxTokens int) (string, []ChunkUsage, int) {
	var b strings.Builder
	usage := make([]ChunkUsage, 0, len(chunks))
	total := 0

	for i, chunk := range chunks {
		tokens := EstimateTokens(chunk)
		if maxTokens > 0 && total+tokens > maxTokens {
			remaining := maxTokens - total
			if remaining > minPartialTokens {
				b.WriteString(truncateToTokens(chunk, remaining))
				b.WriteString("\n\n")
				usage = append(usage, ChunkUsage{Index: i, Tokens: remaining, Truncated: true})
				total += remaining
			}
			break
		}
		b.WriteString(chunk)
		b.WriteString("\n\n")
		usage = append(usage, ChunkUsage{Index: i, Tokens: tokens, Truncated: false})
		total += tokens
	}
	return strings.TrimSpace(b.String()), usage, total
}

// truncateToTokens cuts s to approximately maxTokens worth of characters,
// never splitting a UTF-8 sequence.
func truncateToTokens(s string, maxTokens int) string {
	limit := maxTokens * 4
	if limit >= len(s) {
		return s
	}
	for limit > 0 && !isRuneStart(s[limit]) {
		limit--
	}
	return s[:limit]
}

func isRuneStart(b byte) bool { return b&0xC0 != 0x80 }

// ModelContextTokens returns an estimated maximum context window for a given
// model name. Unknown models fall back to a sensible default.
func ModelContextTokens(modelName string) int {
	name := strings.ToLower(strings.TrimSpace(modelName))
	if name == "" {
		return 8192
	}
	if v, ok := knownModelMax[name]; ok {
		return v
	}
	// Heuristics based on common suffixes present in model names
	if strings.HasSuffix(name, "1m") {
		return 1_000_000
	}
	if strings.HasSuffix(name, "200k") {
		return 200_000
	}
	if strings.HasSuffix(name, "128k") {
		return 128_000
	}
	if strings.Contains(name, "-mini") {
		return 128_000
	}
	return 8192
}

// FitsInContext reports whether the prompt can fit into the model's context
// window when reserving the specified number of output tokens plus a
// conservative headroom for tokenizer and message framing overheads.
func FitsInContext(modelName string, reservedForOutput int, promptTokens int) bool {
	maxCtx := ModelContextTokens(modelName)
	headroom := int(math.Ceil(float64(maxCtx) * 0.05))
	if headroom < 512 {
		headroom = 512
	}
	if reservedForOutput < 0 {
		reservedForOutput = 0
	}
	return maxCtx-reservedForOutput-headroom-promptTokens > 0
}

// knownModelMax contains rough context sizes for common model identifiers.
// These are best-effort and do not need to be exhaustive.
var knownModelMax = map[string]int{
	"gpt-4.1":       1_000_000,
	"gpt-4o":        128_000,
	"gpt-4o-mini":   128_000,
	"gpt-4-turbo":   128_000,
	"gpt-4":         8_192,
	"gpt-3.5-turbo": 16_384,
}
