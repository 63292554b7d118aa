package redis

import (
	"fmt"

	"github.com/mcoot/protocols-go/internal/model"
)

// Key prefix for all application data
const keyPrefix = "protocols"

// starshipKey returns the Redis key for a Starship
func starshipKey(id model.StarshipID) string {
	return fmt.Sprintf("%s:starship:%s", keyPrefix, id)
}

// starshipIndexKey returns the Redis key for the ZSET of starship IDs scored by registration sequence
func starshipIndexKey() string {
	return fmt.Sprintf("%s:idx:starships", keyPrefix)
}

// starshipSeqKey returns the Redis key for the starship registration counter
func starshipSeqKey() string {
	return fmt.Sprintf("%s:seq:starships", keyPrefix)
}

// rollsKey returns the Redis key for the LIST of recent rolls, newest at the head
func rollsKey() string {
	return fmt.Sprintf("%s:rolls", keyPrefix)
}
