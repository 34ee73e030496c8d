package agent

import (
	"fmt"
	"strings"
)

// historyWindow is how many trailing turns are serialized into the prompt.
const historyWindow = 3

// BuildPrompt assembles the provider prompt: role preamble, serialized
// context fields, the trailing history window, and the user's question.
func BuildPrompt(preamble, message string, reqCtx Context, history []Turn) string {
	var parts []string

	parts = append(parts, preamble)
	parts = append(parts, "Nhiệm vụ của bạn là cung cấp thông tin chính xác và hữu ích về các chủ đề du lịch.")
	parts = append(parts, "Hãy trả lời ngắn gọn, súc tích, đầy đủ thông tin và đúng trọng tâm.")

	if section := contextSection(reqCtx); section != "" {
		parts = append(parts, section)
	}
	if section := historySection(history); section != "" {
		parts = append(parts, section)
	}

	parts = append(parts, fmt.Sprintf("\nCâu hỏi của người dùng: %s", message))
	parts = append(parts, "\nHãy cung cấp thông tin chính xác, đầy đủ và đúng trọng tâm. Trả lời bằng tiếng Việt.")

	return strings.Join(parts, "\n")
}

func contextSection(reqCtx Context) string {
	var lines []string

	if len(reqCtx.Locations) > 0 {
		lines = append(lines, fmt.Sprintf("- Địa điểm đã đề cập: %s", strings.Join(reqCtx.Locations, ", ")))
	}
	if len(reqCtx.Dates) > 0 {
		lines = append(lines, fmt.Sprintf("- Thời gian đã đề cập: %s", strings.Join(reqCtx.Dates, ", ")))
	}
	if reqCtx.SupportingInfo != "" {
		lines = append(lines, fmt.Sprintf("- Thông tin bổ sung: %s", reqCtx.SupportingInfo))
	}

	if len(lines) == 0 {
		return ""
	}
	return "\nThông tin ngữ cảnh:\n" + strings.Join(lines, "\n")
}

func historySection(history []Turn) string {
	if len(history) == 0 {
		return ""
	}

	recent := history
	if len(recent) > historyWindow {
		recent = recent[len(recent)-historyWindow:]
	}

	lines := make([]string, 0, len(recent))
	for _, turn := range recent {
		lines = append(lines, fmt.Sprintf("- %s: %s", capitalize(string(turn.Role)), turn.Content))
	}
	return "\nLịch sử hội thoại gần đây:\n" + strings.Join(lines, "\n")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
