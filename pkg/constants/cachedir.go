package constants

import "os"

func defaultTokenCacheDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "."
	}
	return dir
}
