package parser

import (
	"reflect"
	"testing"
)

const wellFormed = `🧠 用户问题概括
用户登录时服务器返回500错误。

⚙️ 涉及模块
认证服务
API 网关

🔍 可能原因
- 数据库连接池耗尽
- 会话服务超时

✉️ 推荐英文回复语
正式风格
Dear customer, we are investigating the login failure.

轻松风格
Hey! We're on it and will get back to you soon.`

func TestParseSections_WellFormed(t *testing.T) {
	got := ParseSections(wellFormed)

	if !got.Complete {
		t.Fatalf("expected complete sections, got %+v", got)
	}
	if got.Summary != "用户登录时服务器返回500错误。" {
		t.Errorf("Summary = %q", got.Summary)
	}
	if want := []string{"认证服务", "API 网关"}; !reflect.DeepEqual(got.Modules, want) {
		t.Errorf("Modules = %v, want %v", got.Modules, want)
	}
	if want := []string{"数据库连接池耗尽", "会话服务超时"}; !reflect.DeepEqual(got.Causes, want) {
		t.Errorf("Causes = %v, want %v", got.Causes, want)
	}
	if got.FormalReply != "Dear customer, we are investigating the login failure." {
		t.Errorf("FormalReply = %q", got.FormalReply)
	}
	if got.CasualReply != "Hey! We're on it and will get back to you soon." {
		t.Errorf("CasualReply = %q", got.CasualReply)
	}
	if got.Raw != wellFormed {
		t.Error("Raw must hold the untouched analysis")
	}
}

func TestParseSections_MarkdownDecorations(t *testing.T) {
	raw := "```markdown\n" +
		"## 🧠 用户问题概括\n概括内容\n" +
		"### ⚙️ 涉及模块：\n1. 支付模块\n2) 订单模块\n" +
		"**🔍 可能原因**\n* 配置错误\n" +
		"## ✉️ 推荐英文回复语\n**正式风格：**\nFormal reply.\n**轻松风格：**\nCasual reply.\n" +
		"```"

	got := ParseSections(raw)
	if !got.Complete {
		t.Fatalf("expected complete sections, got %+v", got)
	}
	if want := []string{"支付模块", "订单模块"}; !reflect.DeepEqual(got.Modules, want) {
		t.Errorf("Modules = %v, want %v", got.Modules, want)
	}
	if want := []string{"配置错误"}; !reflect.DeepEqual(got.Causes, want) {
		t.Errorf("Causes = %v, want %v", got.Causes, want)
	}
	if got.FormalReply != "Formal reply." || got.CasualReply != "Casual reply." {
		t.Errorf("replies = %q / %q", got.FormalReply, got.CasualReply)
	}
}

func TestParseSections_Unstructured(t *testing.T) {
	raw := "The model ignored the format entirely."

	got := ParseSections(raw)
	if got.Complete {
		t.Error("expected incomplete sections")
	}
	if got.Summary != "" || len(got.Modules) != 0 {
		t.Errorf("nothing should be extracted, got %+v", got)
	}
	if got.Raw != raw {
		t.Errorf("Raw = %q", got.Raw)
	}
}

func TestParseSections_HeaderWordsInsideProse(t *testing.T) {
	raw := "🧠 用户问题概括\n这里提到了涉及模块这个词但不是标题。\n"

	got := ParseSections(raw)
	if got.Summary != "这里提到了涉及模块这个词但不是标题。" {
		t.Errorf("Summary = %q", got.Summary)
	}
	if len(got.Modules) != 0 {
		t.Errorf("Modules = %v, want none", got.Modules)
	}
}
