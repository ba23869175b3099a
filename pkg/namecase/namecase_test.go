package namecase

import (
	"fmt"
	"reflect"
	"testing"
)

func ExampleSplit() {
	for _, w := range Split("Салтыков-Щедрин") {
		fmt.Println(Lower(w))
	}
	fmt.Println(Upper("ёлкин"))
	// Output:
	// салтыков
	// щедрин
	// ЁЛКИН
}

func TestSplit(t *testing.T) {
	for _, c := range [][]string{
		{"", ""},
		{"Петров", "Петров"},
		{"Бонч-Бруевич", "Бонч", "Бруевич"},
		{"Римский-Корсаков-Младший", "Римский", "Корсаков", "Младший"},
		{"Анна-", "Анна", ""},
	} {
		t.Run(c[0], func(t *testing.T) {
			ret := Split(c[0])
			expect := c[1:]

			if !reflect.DeepEqual(ret, expect) {
				t.Fatalf("expect %v, but got %v", expect, ret)
			}
			if j := Join(ret); j != c[0] {
				t.Fatalf("expect %q, but got %q", c[0], j)
			}
		})
	}
}

func TestTrimRight(t *testing.T) {
	for _, c := range []struct {
		s      string
		n      int
		expect string
	}{
		{"Пётр", 3, "П"},
		{"Пётр", 0, "Пётр"},
		{"Пётр", 10, ""},
		{"Лев", -1, "Лев"},
		{"", 2, ""},
	} {
		t.Run(fmt.Sprintf("%s/%d", c.s, c.n), func(t *testing.T) {
			if ret := TrimRight(c.s, c.n); ret != c.expect {
				t.Fatalf("expect %q, but got %q", c.expect, ret)
			}
		})
	}
}

func TestHasSuffix(t *testing.T) {
	for _, c := range []struct {
		s      string
		suffix string
		expect bool
	}{
		{"станкевич", "ич", true},
		{"станкевич", "ч", true},
		{"станкевич", "", true},
		{"ич", "вич", false},
		{"саша", "ша", true},
		{"саша", "аш", false},
	} {
		t.Run(c.s+"/"+c.suffix, func(t *testing.T) {
			if ret := HasSuffix(c.s, c.suffix); ret != c.expect {
				t.Fatalf("expect %v, but got %v", c.expect, ret)
			}
		})
	}
}

func TestIsUpper(t *testing.T) {
	for s, expect := range map[string]bool{
		"ПЕТРОВ":          true,
		"САЛТЫКОВ-ЩЕДРИН": true,
		"Петров":          false,
		"П":               false,
		"":                false,
		"петров":          false,
	} {
		if ret := IsUpper(s); ret != expect {
			t.Fatalf("%q: expect %v, but got %v", s, expect, ret)
		}
	}
}

func TestLen(t *testing.T) {
	if n := Len("Ёжик"); n != 4 {
		t.Fatalf("expect 4, but got %d", n)
	}
}
