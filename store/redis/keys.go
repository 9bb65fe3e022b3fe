package redis

import "fmt"

// highScoreKey returns the Redis key for a game's best score
func highScoreKey(prefix, key string) string {
	if prefix == "" {
		return fmt.Sprintf("highscore:%s", key)
	}
	return fmt.Sprintf("%s:highscore:%s", prefix, key)
}
