package bits

import "math/rand"

// randomBytes generates length random bytes from r.
func randomBytes(r *rand.Rand, length int) []byte {
	buf := make([]byte, length)
	r.Read(buf)
	return buf
}

var layouts = map[string]Layout{
	"byte": ByteLayout,
	"word": WordLayout,
}
