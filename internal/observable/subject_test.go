package observable

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubject_ReplaysLatestThenEverySubsequent(t *testing.T) {
	s := NewSubject(0)
	s.Publish(1)
	s.Publish(2)

	var got []int
	cancel := s.Subscribe(func(v int) { got = append(got, v) })
	defer cancel()

	s.Publish(3)
	s.Publish(4)

	assert.Equal(t, []int{2, 3, 4}, got)
	assert.Equal(t, 4, s.Value())
	assert.EqualValues(t, 4, s.version())
}

func TestSubject_CancelStopsDeliveryOnly(t *testing.T) {
	s := NewSubject("a")

	var first, second []string
	cancelFirst := s.Subscribe(func(v string) { first = append(first, v) })
	cancelSecond := s.Subscribe(func(v string) { second = append(second, v) })
	defer cancelSecond()

	cancelFirst()
	cancelFirst()
	s.Publish("b")

	assert.Equal(t, []string{"a"}, first)
	assert.Equal(t, []string{"a", "b"}, second)
	assert.Equal(t, "b", s.Value())
	assert.Equal(t, 1, s.observerCount())
}

func TestSubject_CancelFromInsideCallback(t *testing.T) {
	s := NewSubject(0)

	var got []int
	var cancel func()
	cancel = s.Subscribe(func(v int) {
		got = append(got, v)
		if v == 1 && cancel != nil {
			cancel()
		}
	})

	s.Publish(1)
	s.Publish(2)
	assert.Equal(t, []int{0, 1}, got)
}

func TestSubject_DeliveryOrderFollowsSubscription(t *testing.T) {
	s := NewSubject(0)
	var order []string
	c1 := s.Subscribe(func(v int) {
		if v > 0 {
			order = append(order, "first")
		}
	})
	c2 := s.Subscribe(func(v int) {
		if v > 0 {
			order = append(order, "second")
		}
	})
	defer c1()
	defer c2()

	s.Publish(1)
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestSubject_ObserverMayReadValue(t *testing.T) {
	s := NewSubject(0)
	var seen []int
	cancel := s.Subscribe(func(v int) {
		seen = append(seen, s.Value())
	})
	defer cancel()

	s.Publish(5)
	assert.Equal(t, []int{0, 5}, seen)
}

func TestSubject_ConcurrentPublishersSerialize(t *testing.T) {
	s := NewSubject(0)

	var mu sync.Mutex
	inside := 0
	maxInside := 0
	count := 0
	cancel := s.Subscribe(func(int) {
		mu.Lock()
		inside++
		if inside > maxInside {
			maxInside = inside
		}
		count++
		mu.Unlock()

		mu.Lock()
		inside--
		mu.Unlock()
	})
	defer cancel()

	var wg sync.WaitGroup
	for i := 1; i <= 50; i++ {
		wg.Add(1)
		go func(v int) {
			defer wg.Done()
			s.Publish(v)
		}(i)
	}
	wg.Wait()

	require.Equal(t, 51, count)
	assert.Equal(t, 1, maxInside)
	assert.EqualValues(t, 50, s.version())
}

func TestReadOnly_HandsOutCopies(t *testing.T) {
	s := NewSubject([]int{1, 2})
	ro := ReadOnly(s, func(v []int) []int { return append([]int(nil), v...) })

	cancel := ro.Subscribe(func(v []int) { v[0] = 99 })
	defer cancel()

	got := ro.Value()
	got[1] = 42
	s.Publish([]int{3})

	assert.Equal(t, []int{3}, s.Value())
	assert.Equal(t, []int{3}, ro.Value())

	_, isSubject := ro.(*Subject[[]int])
	assert.False(t, isSubject)
}

func TestReadOnly_NilCloneSharesValue(t *testing.T) {
	s := NewSubject(7)
	ro := ReadOnly(s, nil)

	var got []int
	cancel := ro.Subscribe(func(v int) { got = append(got, v) })
	s.Publish(8)
	cancel()
	s.Publish(9)

	assert.Equal(t, []int{7, 8}, got)
	assert.Equal(t, 9, ro.Value())
	assert.Zero(t, s.observerCount())
}
