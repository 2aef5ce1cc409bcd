package paths

import "fmt"

func ExampleNew() {
	p := New(3)

	fmt.Println(p)
	fmt.Println(p.Len())

	// Output:
	// 3
	// 1
}

func ExamplePath_Extend() {
	p := New(0)
	q := p.Extend(2)
	r := q.Extend(4)
	s := q.Extend(5) // does not modify r

	fmt.Println(p)
	fmt.Println(q)
	fmt.Println(r)
	fmt.Println(s)

	// Output:
	// 0
	// 0 -> 2
	// 0 -> 2 -> 4
	// 0 -> 2 -> 5
}

func ExamplePath_Format() {
	p := Path{0, 1, 3, 6}
	names := []string{"a", "b", "c", "d", "e", "f", "g"}

	fmt.Println(p.Format(names, "->"))
	fmt.Println(p.Format(names[:2], " / ")) // missing names fall back to IDs

	// Output:
	// a->b->d->g
	// a / b / 3 / 6
}

func ExamplePath_Destination() {
	p := New(0).Extend(1).Extend(2)

	fmt.Println(p.Source())
	fmt.Println(p.Destination())

	// Output:
	// 0
	// 2
}

func ExamplePath_Equal() {
	p := Path{0, 1, 2}

	fmt.Println(p.Equal(Path{0, 1, 2}))
	fmt.Println(p.Equal(Path{0, 2, 1}))
	fmt.Println(p.Equal(Path{0, 1}))

	// Output:
	// true
	// false
	// false
}
