package prompts

const (
	TranslateSystemPrompt = "You translate English or Japanese to Chinese."
	AnalyzeSystemPrompt   = "You are a technical support analysis assistant."
)

// Section headers the analysis prompt asks the model to use, in order.
const (
	HeaderSummary     = "🧠 用户问题概括"
	HeaderModules     = "⚙️ 涉及模块"
	HeaderCauses      = "🔍 可能原因"
	HeaderReplies     = "✉️ 推荐英文回复语"
	HeaderFormalReply = "正式风格"
	HeaderCasualReply = "轻松风格"
)

const analysisTemplate = "请根据以下工单内容给出分析结果，使用 Markdown 返回并严格按照以下结构排版：\n" +
	HeaderSummary + "\n" +
	"<一到两句概括>\n\n" +
	HeaderModules + "\n" +
	"模块列表，每行一个\n\n" +
	HeaderCauses + "\n" +
	"原因列表，每行一个\n\n" +
	HeaderReplies + "\n" +
	HeaderFormalReply + "\n" +
	"<正式英文回复>\n\n" +
	HeaderCasualReply + "\n" +
	"<轻松英文回复>"

// AnalysisTemplate returns the fixed instruction block of the analysis prompt.
func AnalysisTemplate() string {
	return analysisTemplate
}

// BuildAnalysisPrompt appends the Chinese ticket text to the template.
func BuildAnalysisPrompt(chineseText string) string {
	return analysisTemplate + "\n\n" + chineseText
}
