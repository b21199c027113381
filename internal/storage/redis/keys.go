package redis

import "fmt"

// Key prefix for all hunt data
const keyPrefix = "qrhunt"

// playerKey returns the Redis key for a Player
func playerKey(username string) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, username)
}

// playersIndexKey returns the Redis key for the ZSET of usernames scored by registration sequence
func playersIndexKey() string {
	return fmt.Sprintf("%s:idx:players", keyPrefix)
}

// playerSeqKey returns the Redis key for the registration sequence counter
func playerSeqKey() string {
	return fmt.Sprintf("%s:seq:players", keyPrefix)
}

// qrCodeKey returns the Redis key for a catalog QRCode
func qrCodeKey(hash string) string {
	return fmt.Sprintf("%s:qrcode:%s", keyPrefix, hash)
}

// qrCodesIndexKey returns the Redis key for the SET of catalog hashes
func qrCodesIndexKey() string {
	return fmt.Sprintf("%s:idx:qrcodes", keyPrefix)
}
