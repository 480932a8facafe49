package poem

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPromptDefaults(t *testing.T) {
	want := "Hãy sáng tác một bài thơ bằng tiếng Việt." +
		"\n\nCác yêu cầu chi tiết khác cần tuân thủ:\n\n" +
		"- **Thể loại thơ:** Thơ Tự Do\n" +
		"- **Số dòng dự kiến:** Khoảng 8 dòng\n" +
		"- **Phong cách:** Lãng mạn\n" +
		"- **Ngữ cảnh:** Tình yêu đôi lứa\n" +
		"- **Cảm xúc chủ đạo:** Vui tươi\n" +
		"- **Ngôn ngữ và nội dung:** Phù hợp với đối tượng độc giả là \"Người lớn\"\n\n"

	assert.Equal(t, want, BuildPrompt(DefaultOptions()))
}

func TestBuildPromptDeterministic(t *testing.T) {
	opts := DefaultOptions()
	opts.Inspiration = "https://youtu.be/abc123"
	opts.Emotions = []string{"Buồn bã", "Nhớ nhung", "Hoài niệm"}

	first := BuildPrompt(opts)
	for i := 0; i < 5; i++ {
		require.Equal(t, first, BuildPrompt(opts))
	}
}

func TestBuildPromptContext(t *testing.T) {
	tests := []struct {
		name          string
		context       string
		customContext string
		want          string
		notWant       string
	}{
		{
			name:          "custom context overrides context",
			context:       "Thiên nhiên",
			customContext: "  bình minh trên biển  ",
			want:          "- **Ngữ cảnh chính:** bình minh trên biển\n",
			notWant:       "- **Ngữ cảnh:**",
		},
		{
			name:          "whitespace custom context falls back",
			context:       "Thiên nhiên",
			customContext: "   ",
			want:          "- **Ngữ cảnh:** Thiên nhiên\n",
			notWant:       "Ngữ cảnh chính",
		},
		{
			name:    "empty custom context falls back",
			context: " Gia đình ",
			want:    "- **Ngữ cảnh:** Gia đình\n",
			notWant: "Ngữ cảnh chính",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			opts.Context = tt.context
			opts.CustomContext = tt.customContext

			got := BuildPrompt(opts)
			assert.Contains(t, got, tt.want)
			assert.NotContains(t, got, tt.notWant)
		})
	}
}

func TestBuildPromptEmotions(t *testing.T) {
	opts := DefaultOptions()

	opts.Emotions = nil
	assert.NotContains(t, BuildPrompt(opts), "Cảm xúc chủ đạo")

	opts.Emotions = []string{"", "  "}
	assert.NotContains(t, BuildPrompt(opts), "Cảm xúc chủ đạo")

	opts.Emotions = []string{"Hy vọng", "Cô đơn", "Bình yên"}
	assert.Contains(t, BuildPrompt(opts), "- **Cảm xúc chủ đạo:** Hy vọng, Cô đơn, Bình yên\n")
}

func TestBuildPromptInspiration(t *testing.T) {
	tests := []struct {
		name        string
		inspiration string
		want        string
	}{
		{
			name:        "video",
			inspiration: "https://youtu.be/abc123",
			want:        "video YouTube tại URL sau, dựa vào tiêu đề và mô tả có thể có của nó: \"https://youtu.be/abc123\". Không truy cập nội dung video.",
		},
		{
			name:        "web page",
			inspiration: " https://example.com/page ",
			want:        "tại URL trang web sau: \"https://example.com/page\". Lưu ý rằng bạn không thể truy cập trực tiếp vào URL này",
		},
		{
			name:        "plain text",
			inspiration: "mùa thu Hà Nội",
			want:        "lấy cảm hứng chính từ nội dung văn bản sau: \"\"\"mùa thu Hà Nội\"\"\"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			opts.Inspiration = tt.inspiration

			got := BuildPrompt(opts)
			assert.True(t, strings.HasPrefix(got, openingInstruction+"\n\nYÊU CẦU CỐT LÕI: "))
			assert.Contains(t, got, tt.want)
			assert.Less(t, strings.Index(got, "YÊU CẦU CỐT LÕI"), strings.Index(got, requirementsHeader))
		})
	}

	opts := DefaultOptions()
	opts.Inspiration = "   "
	assert.NotContains(t, BuildPrompt(opts), "YÊU CẦU CỐT LÕI")
}

func TestBuildPromptTrimsFreeText(t *testing.T) {
	opts := Options{
		Type:     "  Lục Bát ",
		Lines:    14,
		Style:    "\tCổ điển\n",
		Context:  " Quê hương đất nước ",
		Audience: " Trẻ em ",
	}

	got := BuildPrompt(opts)
	assert.Contains(t, got, "- **Thể loại thơ:** Lục Bát\n")
	assert.Contains(t, got, "- **Số dòng dự kiến:** Khoảng 14 dòng\n")
	assert.Contains(t, got, "- **Phong cách:** Cổ điển\n")
	assert.Contains(t, got, "- **Ngữ cảnh:** Quê hương đất nước\n")
	assert.Contains(t, got, "đối tượng độc giả là \"Trẻ em\"\n\n")
}

func TestBuildPromptBulletOrder(t *testing.T) {
	got := BuildPrompt(DefaultOptions())

	order := []string{"Thể loại thơ", "Số dòng dự kiến", "Phong cách", "Ngữ cảnh", "Cảm xúc chủ đạo", "Ngôn ngữ và nội dung"}
	last := -1
	for _, label := range order {
		idx := strings.Index(got, "- **"+label)
		require.Greater(t, idx, last, label)
		last = idx
	}
}
