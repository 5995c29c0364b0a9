package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Decoder lifecycle (debug)
		"Decoder initialized: format %s, bitstream %s, concealment %s": "デコーダを初期化しました: フォーマット %s, ビットストリーム %s, 隠蔽 %s",
		"Decoder uninitialized":                                        "デコーダの初期化を解除しました",
		"Reinitializing decoder":                                       "デコーダを再初期化します",
		"Initialize rejected: %s":                                      "初期化が拒否されました: %s",
		"Initialize rejected: size tag %d, expected %d":                "初期化が拒否されました: サイズタグ %d (期待値 %d)",
		"%s %s rejected: %s":                                           "%s %s が拒否されました: %s",

		// Session (info)
		"Probing %s":                              "%s を解析中",
		"Stream: %s, %dx%d, %d samples (%d sync)": "ストリーム: %s, %dx%d, %d サンプル (同期 %d)",
		"Applying %d option overrides":            "%d 個のオプションを適用中",
		"Replaying %d units":                      "%d ユニットを再生中",
		"Session completed":                       "セッションが完了しました",
		"Report written to %s":                    "レポートを %s に書き込みました",

		// Errors
		"Failed to set %s: %s": "%s の設定に失敗しました: %s",
		"Session failed: %s":   "セッションが失敗しました: %s",
	})
}
