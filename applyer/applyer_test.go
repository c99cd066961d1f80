package applyer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyers(t *testing.T) {
	tests := []struct {
		name    string
		applyer interface{ Apply(string) string }
		in      string
		want    string
	}{
		{"upper", &Upper{}, "Hello", "HELLO"},
		{"lower", &Lower{}, "Hello", "hello"},
		{"trim", &Trim{}, "  padded \t", "padded"},
		{"prefix", &Prefix{Value: "APP_"}, "PORT", "APP_PORT"},
		{"suffix", &Suffix{Value: ".txt"}, "notes", "notes.txt"},
		{"replace", &Replace{Old: "-", New: "_"}, "a-b-c", "a_b_c"},
		{"base64 encode", &Base64Encode{}, "hello", "aGVsbG8="},
		{"base64 decode", &Base64Decode{}, "aGVsbG8=", "hello"},
		{"base64 decode invalid", &Base64Decode{}, "not base64!", "not base64!"},
		{"summary one line", &Summary{}, "single", "[text: 1 line]"},
		{"summary many lines", &Summary{Label: "output"}, "a\nb\nc\n", "[output: 3 lines]"},
		{"summary empty", &Summary{}, "", "[text: 0 lines]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.applyer.Apply(tt.in))
		})
	}
}

func TestStripTags(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "slash command with args",
			in:   "<command-message>git:commit</command-message>\n<command-name>/git:commit</command-name>\n<command-args>everything</command-args>",
			want: "/git:commit everything",
		},
		{
			name: "slash command without args",
			in:   "<command-name>/commit</command-name>\n<command-args></command-args>",
			want: "/commit",
		},
		{
			name: "block stripped",
			in:   "<system-reminder>\nSome reminder\n</system-reminder>",
			want: "",
		},
		{
			name: "text around block kept",
			in:   "before <note kind=\"x\">hidden</note> after",
			want: "before  after",
		},
		{
			name: "unclosed tag stripped alone",
			in:   "<br> text",
			want: "text",
		},
		{
			name: "plain text untouched",
			in:   "no tags here",
			want: "no tags here",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, (&StripTags{}).Apply(tt.in))
		})
	}
}
