package langdetect

import "testing"

func TestResult(t *testing.T) {
	if Unknown.Tag() != "unknown" || !Unknown.IsUnknown() {
		t.Errorf("Unknown = %q, IsUnknown %v", Unknown.Tag(), Unknown.IsUnknown())
	}

	r := Detected(" EN ")
	if r.Tag() != "en" || r.IsUnknown() {
		t.Errorf("Detected(EN) = %q, IsUnknown %v", r.Tag(), r.IsUnknown())
	}
	if r.String() != "en" {
		t.Errorf("String() = %q", r.String())
	}
	if !Detected("").IsUnknown() {
		t.Error("an empty tag must be Unknown")
	}
}

func TestDetect(t *testing.T) {
	d := New()

	tests := []struct {
		name string
		text string
		want []string // any of
	}{
		{name: "english", text: "Server returns 500 on login and the dashboard never loads.", want: []string{"en"}},
		{name: "japanese", text: "ログインするとサーバーが500エラーを返します。確認してください。", want: []string{"ja"}},
		{name: "chinese", text: "登录时服务器返回500错误，请帮忙检查后台日志。", want: []string{"zh", "unknown"}},
		{name: "korean", text: "로그인할 때 서버가 500 오류를 반환합니다.", want: []string{"ko"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := d.Detect(tt.text).Tag()
			for _, w := range tt.want {
				if got == w {
					return
				}
			}
			t.Errorf("Detect(%q) = %q, want one of %v", tt.text, got, tt.want)
		})
	}
}

func TestDetect_DegenerateInputIsUnknown(t *testing.T) {
	d := New()

	for _, text := range []string{"", "   ", "\n\t", "12345", "!!! ??? ...", "500 / 404"} {
		got := d.Detect(text)
		if !got.IsUnknown() {
			t.Errorf("Detect(%q) = %q, want unknown", text, got.Tag())
		}
	}
}
