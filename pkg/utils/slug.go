package utils

import "math/rand"

const slugAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

const SlugLength = 8

// GenerateSlug produces a short public identifier for a quiz play URL.
// Statistically unique at 62^8 combinations; callers still check the
// candidate against persisted slugs and regenerate on collision.
func GenerateSlug() string {
	slug := make([]byte, SlugLength)
	for i := range slug {
		slug[i] = slugAlphabet[rand.Intn(len(slugAlphabet))]
	}
	return string(slug)
}
