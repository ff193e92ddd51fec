package fastuuid

import (
	"encoding/binary"
	"io"
	"time"
)

const (
	// gregorianOffset is the number of seconds between 1582-10-15 and 1970-01-01 UTC.
	gregorianOffset = 12219292800
	ticksPerSecond  = 10_000_000
	maxTicks        = 1<<60 - 1
)

// uuidEpoch is the reference point of version 1 timestamps.
var uuidEpoch = time.Date(1582, time.October, 15, 0, 0, 0, 0, time.UTC)

// NewV1 generates a time-based UUID from the generator clock, its clock sequence
// and the process node identifier.
//
// The clock sequence starts at a random value and is incremented whenever the
// clock reading does not advance past the previous one.
func (g *Generator) NewV1() (UUID, error) {
	var uuid UUID

	t := g.now()
	ticks, err := uuidTicks(t)
	if err != nil {
		return uuid, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.seqReady {
		var randBytes [2]byte
		if _, err := io.ReadFull(g.randReader, randBytes[:]); err != nil {
			return uuid, err
		}
		g.clockSeq = binary.BigEndian.Uint16(randBytes[:]) & 0x3fff
		g.seqReady = true
	} else if ticks <= g.lastTicks {
		g.clockSeq = (g.clockSeq + 1) & 0x3fff
	}
	g.lastTicks = ticks

	binary.BigEndian.PutUint32(uuid[0:4], uint32(ticks))
	binary.BigEndian.PutUint16(uuid[4:6], uint16(ticks>>32))
	binary.BigEndian.PutUint16(uuid[6:8], uint16(ticks>>48))
	binary.BigEndian.PutUint16(uuid[8:10], g.clockSeq)

	node := ProcessNode()
	copy(uuid[10:], node[:])

	uuid.setVersion(VersionTimeBased)
	return uuid, nil
}

// uuidTicks converts t into 100-nanosecond intervals since the UUID epoch.
func uuidTicks(t time.Time) (uint64, error) {
	if t.IsZero() {
		return 0, &ClockError{Time: t, Reason: "zero time"}
	}
	if t.Before(uuidEpoch) {
		return 0, &ClockError{Time: t, Reason: "before 1582-10-15"}
	}
	secs := uint64(t.Unix() + gregorianOffset)
	if secs > maxTicks/ticksPerSecond {
		return 0, &ClockError{Time: t, Reason: "beyond the 60-bit timestamp range"}
	}
	ticks := secs*ticksPerSecond + uint64(t.Nanosecond()/100)
	if ticks > maxTicks {
		return 0, &ClockError{Time: t, Reason: "beyond the 60-bit timestamp range"}
	}
	return ticks, nil
}

// NewV1 generates a time-based UUID using the default generator.
func NewV1() (UUID, error) {
	return defaultGenerator.NewV1()
}

// Ticks returns the 60-bit timestamp of a version 1 UUID, or 0 for other versions.
func (u UUID) Ticks() uint64 {
	if u.Version() != VersionTimeBased {
		return 0
	}
	return uint64(binary.BigEndian.Uint16(u[6:8])&0x0fff)<<48 |
		uint64(binary.BigEndian.Uint16(u[4:6]))<<32 |
		uint64(binary.BigEndian.Uint32(u[0:4]))
}

// Time returns the creation time encoded in a version 1 UUID
func (u UUID) Time() time.Time {
	if u.Version() != VersionTimeBased {
		return time.Time{}
	}
	ticks := u.Ticks()
	sec := int64(ticks/ticksPerSecond) - gregorianOffset
	nsec := int64(ticks%ticksPerSecond) * 100
	return time.Unix(sec, nsec).UTC()
}

// ClockSequence returns the 14-bit clock sequence of a version 1 UUID, or -1 for other versions.
func (u UUID) ClockSequence() int {
	if u.Version() != VersionTimeBased {
		return -1
	}
	return int(binary.BigEndian.Uint16(u[8:10]) & 0x3fff)
}

// NodeID returns the 6-byte node field of a version 1 UUID, or nil for other versions.
func (u UUID) NodeID() []byte {
	if u.Version() != VersionTimeBased {
		return nil
	}
	return u[10:16]
}
