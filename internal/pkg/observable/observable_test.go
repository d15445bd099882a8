package observable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValue_SetNotifiesInOrder(t *testing.T) {
	v := New("")
	var seen []string

	v.Subscribe(func(s string) { seen = append(seen, "a:"+s) })
	v.Subscribe(func(s string) { seen = append(seen, "b:"+s) })

	v.Set("tok")
	assert.Equal(t, "tok", v.Get())
	assert.Equal(t, []string{"a:tok", "b:tok"}, seen)
}

func TestValue_Unsubscribe(t *testing.T) {
	v := New(0)
	calls := 0
	unsubscribe := v.Subscribe(func(int) { calls++ })

	v.Set(1)
	unsubscribe()
	v.Set(2)

	assert.Equal(t, 1, calls)
	assert.Equal(t, 2, v.Get())
}

func TestValue_Update(t *testing.T) {
	v := New([]int{1})
	var last []int
	v.Subscribe(func(xs []int) { last = xs })

	got := v.Update(func(xs []int) []int { return append(xs, 2) })

	assert.Equal(t, []int{1, 2}, got)
	assert.Equal(t, []int{1, 2}, last)
}

func TestValue_ListenerMayRead(t *testing.T) {
	v := New("a")
	var read string
	v.Subscribe(func(string) { read = v.Get() })

	v.Set("b")
	assert.Equal(t, "b", read)
}
