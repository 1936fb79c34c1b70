package wareki_test

import (
	"errors"
	"fmt"
	"time"

	wareki "github.com/rabitt1ove/jp-wareki"
)

func ExampleToWareki() {
	w, err := wareki.ToWareki(2024, time.May, 1)
	if err != nil {
		panic(err)
	}
	fmt.Println(w)
	fmt.Println(w.Era, w.Year)
	// Output:
	// 令和6年
	// Reiwa 6
}

func ExampleToWareki_boundary() {
	// 昭和 ended on 1989-01-07; 平成 began the next day.
	last, _ := wareki.ToWareki(1989, time.January, 7)
	first, _ := wareki.ToWareki(1989, time.January, 8)
	fmt.Println(last)
	fmt.Println(first)
	// Output:
	// 昭和64年
	// 平成1年
}

func ExampleFromWareki() {
	for _, era := range []string{"令和", "令", "r"} {
		d, err := wareki.FromWareki(era, 6, time.May, 1)
		if err != nil {
			panic(err)
		}
		fmt.Println(d)
	}
	// Output:
	// 2024-05-01
	// 2024-05-01
	// 2024-05-01
}

func ExampleFromWareki_outsideEra() {
	// 令和 began on 2019-05-01, so 令和1年4月30日 does not exist.
	_, err := wareki.FromWareki("令和", 1, time.April, 30)
	fmt.Println(errors.Is(err, wareki.ErrDateBeforeEraStart))
	// Output: true
}

func ExampleFromTime() {
	// 2019-04-30 15:00 UTC is already 2019-05-01 in Japan.
	w, _ := wareki.FromTime(time.Date(2019, time.April, 30, 15, 0, 0, 0, time.UTC))
	fmt.Println(w)
	// Output: 令和1年
}

func ExampleParseGregorian() {
	d, err := wareki.ParseGregorian("令和元年５月１日")
	if err != nil {
		panic(err)
	}
	fmt.Println(d)
	// Output: 2019-05-01
}

func ExampleNew() {
	defs := append([]wareki.EraDefinition{{
		Era:   wareki.Reiwa + 1,
		Name:  "新元",
		Short: "新",
		Code:  "N",
		Start: wareki.GregorianDate{Year: 2040, Month: time.April, Day: 1},
	}}, wareki.Eras()...)

	c, err := wareki.New(defs...)
	if err != nil {
		panic(err)
	}
	w, _ := c.ToWareki(2040, time.April, 1)
	fmt.Println(w)
	// Output: 新元1年
}
