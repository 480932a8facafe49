package poem

import (
	"fmt"
	"strings"
)

const (
	openingInstruction = "Hãy sáng tác một bài thơ bằng tiếng Việt."
	requirementsHeader = "Các yêu cầu chi tiết khác cần tuân thủ:"
	emotionSeparator   = ", "
)

// BuildPrompt renders options into the instruction sent to the model. The
// output depends only on opts; section order is significant to the model.
func BuildPrompt(opts Options) string {
	var b strings.Builder

	b.WriteString(openingInstruction)
	b.WriteString(inspirationClause(opts.Inspiration))

	b.WriteString("\n\n" + requirementsHeader + "\n\n")
	writeBullet(&b, "Thể loại thơ", strings.TrimSpace(opts.Type))
	writeBullet(&b, "Số dòng dự kiến", fmt.Sprintf("Khoảng %d dòng", opts.Lines))
	writeBullet(&b, "Phong cách", strings.TrimSpace(opts.Style))

	if ctx, custom := opts.EffectiveContext(); custom {
		writeBullet(&b, "Ngữ cảnh chính", ctx)
	} else {
		writeBullet(&b, "Ngữ cảnh", ctx)
	}

	if emotions := opts.SelectedEmotions(); len(emotions) > 0 {
		writeBullet(&b, "Cảm xúc chủ đạo", strings.Join(emotions, emotionSeparator))
	}

	writeBullet(&b, "Ngôn ngữ và nội dung",
		"Phù hợp với đối tượng độc giả là \""+strings.TrimSpace(opts.Audience)+"\"")
	b.WriteString("\n")

	return b.String()
}

func writeBullet(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "- **%s:** %s\n", label, value)
}

// inspirationClause returns the clause (with its leading blank line) for the
// classified inspiration, or "" when none was supplied.
func inspirationClause(raw string) string {
	text := strings.TrimSpace(raw)

	switch ClassifyInspiration(text) {
	case InspirationVideo:
		return "\n\nYÊU CẦU CỐT LÕI: Phân tích và lấy cảm hứng từ chủ đề của video YouTube tại URL sau, " +
			"dựa vào tiêu đề và mô tả có thể có của nó: \"" + text + "\". " +
			"Không truy cập nội dung video. Hãy tưởng tượng nội dung và cảm xúc của video để sáng tác."
	case InspirationURL:
		return "\n\nYÊU CẦU CỐT LÕI: Phân tích và lấy cảm hứng từ chủ đề và nội dung có thể có tại URL trang web sau: \"" +
			text + "\". Lưu ý rằng bạn không thể truy cập trực tiếp vào URL này, " +
			"hãy dựa vào kiến thức của bạn về trang web này (nếu có) và chủ đề gợi ý từ URL để sáng tác."
	case InspirationText:
		return "\n\nYÊU CẦU CỐT LÕI: Phân tích kỹ lưỡng và lấy cảm hứng chính từ nội dung văn bản sau: \"\"\"" +
			text + "\"\"\""
	default:
		return ""
	}
}
