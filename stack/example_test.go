package stack_test

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/larynjahor/ds/deque"
	"github.com/larynjahor/ds/stack"
)

func Example_postfix() {
	s := stack.New[int]()

	for _, token := range strings.Fields("3 4 + 2 *") {
		switch token {
		case "+", "*":
			b := s.Top()
			s.Pop()

			a := s.Top()
			s.Pop()

			if token == "+" {
				s.Push(a + b)
			} else {
				s.Push(a * b)
			}
		default:
			n, _ := strconv.Atoi(token)
			s.Push(n)
		}
	}

	fmt.Println(s.Top())
	// Output: 14
}

func ExampleFrom() {
	s := stack.From[rune](deque.New[rune]())

	for _, r := range "stressed" {
		s.Push(r)
	}

	for !s.Empty() {
		fmt.Print(string(s.Top()))
		s.Pop()
	}

	// Output: desserts
}
