package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/fatih/color"
)

const fakeAnalysis = `🧠 用户问题概括
用户登录时服务器返回500错误。

⚙️ 涉及模块
认证服务

🔍 可能原因
数据库连接池耗尽

✉️ 推荐英文回复语
正式风格
Thank you for reporting this issue.

轻松风格
Thanks for the heads-up!`

// fakeOpenAI answers translation requests with a fixed Chinese sentence and
// everything else with fakeAnalysis.
func fakeOpenAI(t *testing.T, hits *atomic.Int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		var req struct {
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}

		reply := fakeAnalysis
		if len(req.Messages) > 0 && strings.Contains(req.Messages[0].Content, "translate") {
			reply = "  登录时服务器返回500错误，页面一直空白。  "
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"created": 1700000000,
			"model":   "gpt-3.5-turbo",
			"choices": []map[string]any{{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]any{"role": "assistant", "content": reply},
			}},
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func setupEnv(t *testing.T, apiKey, baseURL string) {
	t.Helper()
	for _, key := range []string{"LLM_PROVIDER", "OPENAI_MODEL", "ANTHROPIC_API_KEY", "CLAUDE_MODEL", "ANTHROPIC_BASE_URL"} {
		t.Setenv(key, "")
	}
	t.Setenv("HOME", t.TempDir())
	t.Setenv("OPENAI_API_KEY", apiKey)
	t.Setenv("OPENAI_BASE_URL", baseURL)
	color.NoColor = true
}

func writeTicket(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ticket.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write ticket: %v", err)
	}
	return path
}

func runAnalyzeCmd(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	c := NewAnalyzeCmd()
	c.SetArgs(args)
	c.SetOut(&stdout)
	c.SetErr(&stderr)
	err := c.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestAnalyze_EnglishTicket(t *testing.T) {
	var hits atomic.Int32
	srv := fakeOpenAI(t, &hits)
	setupEnv(t, "sk-test", srv.URL+"/")

	input := writeTicket(t, "\n  Server returns 500 on login and the dashboard page stays blank for every user.  \n")
	output := filepath.Join(t.TempDir(), "reports", "report.md")

	stdout, stderr, err := runAnalyzeCmd(t, "--input", input, "--output", output)
	if err != nil {
		t.Fatalf("analyze failed: %v\nstderr: %s", err, stderr)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("report not written: %v", err)
	}

	want := "原始内容（en）\n" +
		"Server returns 500 on login and the dashboard page stays blank for every user.\n" +
		"\n" +
		"中文翻译\n" +
		"登录时服务器返回500错误，页面一直空白。\n" +
		"\n" +
		"分析结果\n" +
		fakeAnalysis
	if string(data) != want {
		t.Errorf("report =\n%s\nwant\n%s", data, want)
	}
	if n := hits.Load(); n != 2 {
		t.Errorf("expected 2 model calls (translate, analyze), got %d", n)
	}
	if !strings.Contains(stdout, "1. 认证服务") {
		t.Errorf("expected human summary on stdout:\n%s", stdout)
	}
	if !strings.Contains(stderr, "Report written to") {
		t.Errorf("expected status line on stderr:\n%s", stderr)
	}
}

func TestAnalyze_ChineseTicketSkipsTranslation(t *testing.T) {
	var hits atomic.Int32
	srv := fakeOpenAI(t, &hits)
	setupEnv(t, "sk-test", srv.URL+"/")

	ticket := "登录时服务器返回500错误，请帮忙检查后台日志。"
	input := writeTicket(t, ticket)
	output := filepath.Join(t.TempDir(), "report.md")

	stdout, stderr, err := runAnalyzeCmd(t, "-i", input, "-o", output, "-f", "json")
	if err != nil {
		t.Fatalf("analyze failed: %v\nstderr: %s", err, stderr)
	}

	data, _ := os.ReadFile(output)
	if !strings.Contains(string(data), "中文翻译\n"+ticket+"\n") {
		t.Errorf("translation section must equal the original:\n%s", data)
	}
	if n := hits.Load(); n != 1 {
		t.Errorf("expected only the analysis call, got %d", n)
	}

	var decoded struct {
		Translated bool `json:"translated"`
	}
	if err := json.Unmarshal([]byte(stdout), &decoded); err != nil {
		t.Fatalf("stdout is not JSON: %v\n%s", err, stdout)
	}
	if decoded.Translated {
		t.Error("Chinese ticket must not be translated")
	}
}

func TestAnalyze_MissingCredential(t *testing.T) {
	var hits atomic.Int32
	srv := fakeOpenAI(t, &hits)
	setupEnv(t, "", srv.URL+"/")

	input := writeTicket(t, "Server returns 500 on login and the dashboard page stays blank.")
	output := filepath.Join(t.TempDir(), "report.md")

	_, _, err := runAnalyzeCmd(t, "--input", input, "--output", output)
	if err == nil {
		t.Fatal("expected error without OPENAI_API_KEY")
	}
	if !strings.Contains(err.Error(), "OPENAI_API_KEY not set") {
		t.Errorf("unexpected error: %v", err)
	}
	if _, statErr := os.Stat(output); !os.IsNotExist(statErr) {
		t.Error("no report may be written on failure")
	}
	if n := hits.Load(); n != 0 {
		t.Errorf("expected zero model calls, got %d", n)
	}
}

func TestAnalyze_EmptyTicket(t *testing.T) {
	var hits atomic.Int32
	srv := fakeOpenAI(t, &hits)
	setupEnv(t, "sk-test", srv.URL+"/")

	input := writeTicket(t, " \n\t ")
	output := filepath.Join(t.TempDir(), "report.md")

	_, _, err := runAnalyzeCmd(t, "--input", input, "--output", output)
	if err != errEmptyTicket {
		t.Fatalf("expected errEmptyTicket, got %v", err)
	}
	if n := hits.Load(); n != 0 {
		t.Errorf("expected zero model calls, got %d", n)
	}
}

func TestAnalyze_InvalidFormat(t *testing.T) {
	setupEnv(t, "sk-test", "http://127.0.0.1:1/")

	input := writeTicket(t, "hello")
	_, _, err := runAnalyzeCmd(t, "--input", input, "--output", filepath.Join(t.TempDir(), "r.md"), "-f", "xml")
	if err == nil || !strings.Contains(err.Error(), "invalid output format") {
		t.Fatalf("expected invalid format error, got %v", err)
	}
}

func TestAnalyze_RequiredFlags(t *testing.T) {
	_, _, err := runAnalyzeCmd(t, "--input", "ticket.txt")
	if err == nil {
		t.Fatal("expected error when --output is missing")
	}
}
