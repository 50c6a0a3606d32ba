package cache

import (
	"time"
)

// TimeUntilNextIngest は次の取り込み実行時刻（日本時間の午前8時）までの期間を返します。
// ローソク足は朝のバッチ取り込みでしか変わらないため、
// 描画済みチャートはその時刻までキャッシュできます。
func TimeUntilNextIngest() time.Duration {
	loc, _ := time.LoadLocation("Asia/Tokyo")
	now := time.Now().In(loc)

	// 次の午前8時を計算
	next := time.Date(now.Year(), now.Month(), now.Day(), 8, 0, 0, 0, loc)

	// 今日の午前8時が既に過ぎている場合は明日の午前8時を使用
	if now.After(next) {
		next = next.Add(24 * time.Hour)
	}

	return next.Sub(now)
}
