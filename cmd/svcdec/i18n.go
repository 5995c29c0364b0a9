// Package main provides localization for the svcdec CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		"Inspect and exercise the decoder option interface": "デコーダのオプションインターフェースを検査・実行",
		"Logging":                                           "ログ",
		"Log level (debug, info, warn, error)":              "ログレベル（debug, info, warn, error）",
		"Suppress all log output":                           "すべてのログ出力を抑制",

		// inspect command
		"Run a decoder session and report every option": "デコーダセッションを実行し全オプションを報告",
		"YAML configuration file":                       "YAML設定ファイル",
		"MP4 file to probe and replay":                  "解析・再生するMP4ファイル",
		"Report format (text, markdown)":                "レポート形式（text, markdown）",
		"Write the report to a file instead of stdout":  "標準出力の代わりにファイルへレポートを書き込む",
		"Set end-of-stream after the replay":            "再生後にストリーム終端を設定",
		"unknown report format":                         "不明なレポート形式",

		// options command
		"List the option registry": "オプション一覧を表示",
	})
}
