package fastuuid

import "io"

// batchChunk bounds the scratch buffer used by NewV4Batch to one page of entropy.
const batchChunk = 256

// NewV4 generates a random UUID from the generator's random source.
func (g *Generator) NewV4() (UUID, error) {
	var uuid UUID
	if _, err := io.ReadFull(g.randReader, uuid[:]); err != nil {
		return uuid, err
	}
	uuid.setVersion(VersionRandom)
	return uuid, nil
}

// NewV4Batch generates count independent random UUIDs. Entropy is read in
// bulk; a count of zero or less returns an empty slice.
func (g *Generator) NewV4Batch(count int) ([]UUID, error) {
	if count <= 0 {
		return []UUID{}, nil
	}
	uuids := make([]UUID, count)
	var buf [batchChunk * 16]byte
	for start := 0; start < count; start += batchChunk {
		n := min(batchChunk, count-start)
		if _, err := io.ReadFull(g.randReader, buf[:n*16]); err != nil {
			return nil, err
		}
		for i := 0; i < n; i++ {
			u := &uuids[start+i]
			copy(u[:], buf[i*16:])
			u.setVersion(VersionRandom)
		}
	}
	return uuids, nil
}

// NewV4 generates a random UUID using the default generator. It never fails:
// crypto/rand does not return errors on supported platforms.
func NewV4() UUID {
	return Must(defaultGenerator.NewV4())
}

// NewV4Batch generates count random UUIDs using the default generator.
func NewV4Batch(count int) []UUID {
	uuids, err := defaultGenerator.NewV4Batch(count)
	if err != nil {
		panic(err)
	}
	return uuids
}
