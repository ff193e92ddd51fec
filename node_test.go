package fastuuid

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveNode(t *testing.T) {
	a := deriveNode(4242, "host-a")
	assert.Equal(t, a, deriveNode(4242, "host-a"))
	assert.NotEqual(t, a, deriveNode(4243, "host-a"))
	assert.NotEqual(t, a, deriveNode(4242, "host-b"))

	for pid := 0; pid < 256; pid++ {
		node := deriveNode(pid, "")
		assert.Equal(t, byte(0x01), node[0]&0x01, "pid %d", pid)
	}
}

func TestProcessNode_ConcurrentAccess(t *testing.T) {
	const workers = 64
	nodes := make([][6]byte, workers)

	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			id, err := NewV1()
			if err != nil {
				t.Error(err)
				return
			}
			copy(nodes[i][:], id.NodeID())
		}(i)
	}
	close(start)
	wg.Wait()

	want := ProcessNode()
	for i, node := range nodes {
		assert.Equal(t, want, node, "worker %d", i)
	}
}

func TestNewNodeCell_SingleDerivation(t *testing.T) {
	const workers = 64
	var calls atomic.Int32
	release := make(chan struct{})
	cell := newNodeCell(func() [6]byte {
		calls.Add(1)
		<-release
		return deriveNode(int(calls.Load()), "cell")
	})

	nodes := make([][6]byte, workers)
	var ready, wg sync.WaitGroup
	ready.Add(workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ready.Done()
			nodes[i] = cell()
		}(i)
	}
	ready.Wait()
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	want := deriveNode(1, "cell")
	for i, node := range nodes {
		assert.Equal(t, want, node, "worker %d", i)
	}
	assert.Equal(t, want, cell())
	assert.Equal(t, int32(1), calls.Load())
}
