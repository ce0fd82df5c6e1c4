package quadrature

var Trapezoidal = register(&Rule{
	Name:        "trapezoidal rule",
	Key:         "trapezoidal",
	Divisor:     1,
	End:         1,
	Inner:       func(int) float64 { return 2 },
	Numerator:   1,
	Denominator: 2,
	Degree:      1,
})

var Simpson13 = register(&Rule{
	Name:    "Simpson's 1/3 rule",
	Key:     "simpson13",
	Divisor: 2,
	End:     1,
	Inner: func(i int) float64 {
		if i%2 == 1 {
			return 4
		}
		return 2
	},
	Numerator:   1,
	Denominator: 3,
	Degree:      3,
})

var Simpson38 = register(&Rule{
	Name:    "Simpson's 3/8 rule",
	Key:     "simpson38",
	Divisor: 3,
	End:     1,
	Inner: func(i int) float64 {
		if i%3 == 0 {
			return 2
		}
		return 3
	},
	Numerator:   3,
	Denominator: 8,
	Degree:      3,
})

var Boole = register(&Rule{
	Name:    "Boole's rule",
	Key:     "boole",
	Divisor: 4,
	End:     7,
	Inner: func(i int) float64 {
		switch {
		case i%4 == 0:
			return 14
		case i%2 == 0:
			return 12
		}
		return 32
	},
	Numerator:   2,
	Denominator: 45,
	Degree:      5,
})

var Weddle = register(&Rule{
	Name:    "Weddle's rule",
	Key:     "weddle",
	Divisor: 6,
	End:     1,
	Inner: func(i int) float64 {
		switch i % 6 {
		case 0:
			return 2
		case 1, 5:
			return 5
		case 3:
			return 6
		}
		return 1
	},
	Numerator:   3,
	Denominator: 10,
	Degree:      5,
})
