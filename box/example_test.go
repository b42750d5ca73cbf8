package box_test

import (
	"errors"
	"fmt"

	"github.com/wippyai/anybox/box"
)

func Example() {
	a := box.New(5)
	b := box.New([3]int32{1, 2, 3})
	defer a.Reset()
	defer b.Reset()

	a.Swap(b)

	fmt.Println(box.MustCast[[3]int32](a), box.MustCast[int](b))

	_, err := box.Cast[string](a)
	fmt.Println(errors.Is(err, box.ErrTypeMismatch))
	// Output:
	// [1 2 3] 5
	// true
}
