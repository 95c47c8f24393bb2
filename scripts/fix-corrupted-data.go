package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/coc-api/internal/engine/rules"
	"github.com/KirkDiggler/coc-api/internal/entities/coc"
)

const occupationStatSuffix = ":occupation_stat"

func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning investigator records...")

	iter := client.Scan(ctx, 0, "investigator:*", 0).Iterator()

	var corruptedKeys []string
	stale := make(map[string]*coc.Character)
	var checkedCount int

	for iter.Next(ctx) {
		key := iter.Val()
		if strings.HasSuffix(key, occupationStatSuffix) {
			continue
		}
		checkedCount++

		data, err := client.Get(ctx, key).Result()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		var ch coc.Character
		if err := json.Unmarshal([]byte(data), &ch); err != nil {
			fmt.Printf("✗ Corrupted JSON in %s\n", key)
			corruptedKeys = append(corruptedKeys, key)
			continue
		}
		if ch.ID == "" || len(ch.Skills) == 0 {
			fmt.Printf("✗ Missing id or skill list in %s\n", key)
			corruptedKeys = append(corruptedKeys, key)
			continue
		}

		// records written before a rules change carry old derived values
		fixed := rules.Recompute(&ch)
		if derivedDiffer(&ch, fixed) {
			fmt.Printf("✗ Stale derived values in %s: HP %d→%d, MP %d→%d, sanity limit %d→%d\n",
				key,
				ch.HitPoints.Max, fixed.HitPoints.Max,
				ch.MagicPoints.Max, fixed.MagicPoints.Max,
				ch.Sanity.Limit, fixed.Sanity.Limit)
			stale[key] = fixed
		}
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d records, found %d corrupted and %d stale\n", checkedCount, len(corruptedKeys), len(stale))

	if len(corruptedKeys) == 0 && len(stale) == 0 {
		fmt.Println("No corrupted data found!")
		return
	}

	if len(stale) > 0 && confirm("\nRecompute and rewrite the stale records? (yes/no): ") {
		for key, ch := range stale {
			data, err := json.Marshal(ch)
			if err != nil {
				fmt.Printf("Failed to encode %s: %v\n", key, err)
				continue
			}
			if err := client.Set(ctx, key, data, 0).Err(); err != nil {
				fmt.Printf("Failed to rewrite %s: %v\n", key, err)
			} else {
				fmt.Printf("Rewrote %s\n", key)
			}
		}
	}

	if len(corruptedKeys) == 0 {
		return
	}

	fmt.Println("\nCorrupted keys:")
	for _, key := range corruptedKeys {
		fmt.Printf("  - %s\n", key)
	}

	if !confirm("\nDo you want to DELETE these corrupted entries? (yes/no): ") {
		fmt.Println("Aborted - no changes made")
		return
	}
	for _, key := range corruptedKeys {
		if err := client.Del(ctx, key, key+occupationStatSuffix).Err(); err != nil {
			fmt.Printf("Failed to delete %s: %v\n", key, err)
		} else {
			fmt.Printf("Deleted %s\n", key)
		}
	}
	fmt.Println("\nCleanup complete! Owner indexes drop the missing ids on the next list.")
}

func derivedDiffer(a, b *coc.Character) bool {
	return a.HitPoints.Max != b.HitPoints.Max ||
		a.MagicPoints.Max != b.MagicPoints.Max ||
		a.Sanity.Starting != b.Sanity.Starting ||
		a.Sanity.Limit != b.Sanity.Limit ||
		a.Combat != b.Combat ||
		a.Characteristics.MOV != b.Characteristics.MOV
}

func confirm(prompt string) bool {
	fmt.Print(prompt)
	var response string
	_, _ = fmt.Scanln(&response) // nolint:errcheck // empty input means no
	return response == "yes"
}
