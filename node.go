package fastuuid

import (
	"encoding/binary"
	"os"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// processNode holds the node identifier shared by every version 1 UUID of this process.
var processNode = newNodeCell(localNode)

// newNodeCell wraps derive so that it runs once; concurrent first callers wait
// for that single run and all observe its result.
func newNodeCell(derive func() [6]byte) func() [6]byte {
	return sync.OnceValue(derive)
}

func localNode() [6]byte {
	host, _ := os.Hostname()
	return deriveNode(os.Getpid(), host)
}

// ProcessNode returns the 6-byte node identifier used for version 1 UUIDs.
// It is computed on first use and stays fixed for the life of the process.
func ProcessNode() [6]byte {
	return processNode()
}

// deriveNode hashes the process id and host name into a node identifier with the
// multicast bit set, marking it as not being an IEEE 802 address.
func deriveNode(pid int, host string) [6]byte {
	var pidBuf [8]byte
	binary.BigEndian.PutUint64(pidBuf[:], uint64(pid))

	d := xxhash.New()
	_, _ = d.Write(pidBuf[:])
	_, _ = d.WriteString(host)

	var sum [8]byte
	binary.BigEndian.PutUint64(sum[:], d.Sum64())

	var node [6]byte
	copy(node[:], sum[2:])
	// RFC 4122 section 4.5 multicast bit: least significant bit of the first
	// node octet, not the high bit of the last one.
	node[0] |= 0x01
	return node
}
