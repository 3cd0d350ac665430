package hint

import "math"

// entry pairs a hint label with the transform that produces its value.
// Labels use {} where the value is shown; x stands for the target.
type entry struct {
	label string
	fn    func(x float64) float64
}

func pow(x float64, n int) float64 {
	return math.Pow(x, float64(n))
}

var easyCatalog = []entry{
	{"The secret number is 5 more than {}", func(x float64) float64 { return x - 5 }},
	{"The secret number is 10 more than {}", func(x float64) float64 { return x - 10 }},
	{"The secret number is 12 more than {}", func(x float64) float64 { return x - 12 }},
	{"The secret number is 14 more than {}", func(x float64) float64 { return x - 14 }},
	{"The secret number is 15 more than {}", func(x float64) float64 { return x - 15 }},
	{"The secret number is 22 more than {}", func(x float64) float64 { return x - 22 }},
	{"The secret number is 18 less than {}", func(x float64) float64 { return x + 18 }},
	{"The secret number is 20 less than {}", func(x float64) float64 { return x + 20 }},
	{"The secret number is 28 less than {}", func(x float64) float64 { return x + 28 }},
	{"The secret number is 30 less than {}", func(x float64) float64 { return x + 30 }},
	{"The secret number is 45 less than {}", func(x float64) float64 { return x + 45 }},
	{"The square root of the secret number is 25 more than {}", func(x float64) float64 { return math.Sqrt(x) - 25 }},
	{"The cube root of the secret number is 10 less than {}", func(x float64) float64 { return math.Cbrt(x) + 10 }},
	{"The secret number plus 3 is 5 more than {}", func(x float64) float64 { return x + 3 - 5 }},
	{"The secret number minus 4 is 20 less than {}", func(x float64) float64 { return x - 4 + 20 }},
	{"The secret number plus 1 is 8 more than {}", func(x float64) float64 { return x + 1 - 8 }},
	{"Half the secret number is 15 more than {}", func(x float64) float64 { return x/2 - 15 }},
	{"A quarter of the secret number is 16 more than {}", func(x float64) float64 { return x/4 - 16 }},
	{"A fifth of the secret number is 32 more than {}", func(x float64) float64 { return x/5 - 32 }},
	{"A sixth of the secret number is 4 more than {}", func(x float64) float64 { return x/6 - 4 }},
	{"Three times the secret number is 30 less than {}", func(x float64) float64 { return x*3 + 30 }},
	{"Four times the secret number is 28 less than {}", func(x float64) float64 { return x*4 + 28 }},
	{"Six times the secret number is 6 less than {}", func(x float64) float64 { return x*6 + 6 }},
	{"Seven times the secret number is 10 less than {}", func(x float64) float64 { return x*7 + 10 }},
}

var hardCatalog = []entry{
	{"(x^2 - 3)×4 + (x^3÷2 - 7) = {}", func(x float64) float64 { return (pow(x, 2)-3)*4 + (pow(x, 3)/2 - 7) }},
	{"(2x^3 + 5)×3 - (x^2÷4 + 8) = {}", func(x float64) float64 { return (2*pow(x, 3)+5)*3 - (pow(x, 2)/4 + 8) }},
	{"(x^4 - 2x)×2 + (3x÷5 - 12) = {}", func(x float64) float64 { return (pow(x, 4)-2*x)*2 + (3*x/5 - 12) }},
	{"(5x^2 + 1)×6 - (x^3÷3 + 9) = {}", func(x float64) float64 { return (5*pow(x, 2)+1)*6 - (pow(x, 3)/3 + 9) }},
	{"(x^3 - 4x^2)×5 + (2x÷7 - 11) = {}", func(x float64) float64 { return (pow(x, 3)-4*pow(x, 2))*5 + (2*x/7 - 11) }},
	{"(3x^2 + 2x)×2 - (x^4÷6 + 10) = {}", func(x float64) float64 { return (3*pow(x, 2)+2*x)*2 - (pow(x, 4)/6 + 10) }},
	{"(x^5 - x^2)×4 + (5x÷3 - 13) = {}", func(x float64) float64 { return (pow(x, 5)-pow(x, 2))*4 + (5*x/3 - 13) }},
	{"(4x^2 + 3x)×5 - (x^3÷4 + 7) = {}", func(x float64) float64 { return (4*pow(x, 2)+3*x)*5 - (pow(x, 3)/4 + 7) }},
	{"(x^3 - 2x^2)×6 + (3x÷2 - 9) = {}", func(x float64) float64 { return (pow(x, 3)-2*pow(x, 2))*6 + (3*x/2 - 9) }},
	{"(x^2 + 6x)×3 + (2x^3÷5 - 14) = {}", func(x float64) float64 { return (pow(x, 2)+6*x)*3 + (2*pow(x, 3)/5 - 14) }},
	{"(x^4 + 2x^2)×2 + (3x÷7 - 10) = {}", func(x float64) float64 { return (pow(x, 4)+2*pow(x, 2))*2 + (3*x/7 - 10) }},
	{"3(x^2 - 4) + 2x - (x^3÷5) = {}", func(x float64) float64 { return 3*(pow(x, 2)-4) + 2*x - pow(x, 3)/5 }},
	{"(2x^3 + 7x - 1)×2 - (x^2 - 3) = {}", func(x float64) float64 { return (2*pow(x, 3)+7*x-1)*2 - (pow(x, 2) - 3) }},
	{"(4x^4 - 2x^2)÷3 + 5x - 8 = {}", func(x float64) float64 { return (4*pow(x, 4)-2*pow(x, 2))/3 + 5*x - 8 }},
	{"(x^2 + 2x)(x - 1) + 6 = {}", func(x float64) float64 { return (pow(x, 2)+2*x)*(x-1) + 6 }},
	{"7x^3 - 2(x^2 - 5x) + (x÷2) = {}", func(x float64) float64 { return 7*pow(x, 3) - 2*(pow(x, 2)-5*x) + x/2 }},
	{"(x^4 - 3x^2 + 2)÷2 + 4x = {}", func(x float64) float64 { return (pow(x, 4)-3*pow(x, 2)+2)/2 + 4*x }},
	{"5(x^2 - x) - (2x^3 + 3) = {}", func(x float64) float64 { return 5*(pow(x, 2)-x) - (2*pow(x, 3) + 3) }},
	{"(x^3 + 4x^2)(x - 2) + 9 = {}", func(x float64) float64 { return (pow(x, 3)+4*pow(x, 2))*(x-2) + 9 }},
	{"(3x^2 - 2x + 1)÷(x + 1) - 7 = {}", func(x float64) float64 { return (3*pow(x, 2)-2*x+1)/(x+1) - 7 }},
	{"(2x^4 - x^2) + (3x - 5)^2 = {}", func(x float64) float64 { return 2*pow(x, 4) - pow(x, 2) + pow(3*x-5, 2) }},
	{"(x^2 + 5x + 6)÷(x + 2) + 3x = {}", func(x float64) float64 { return (pow(x, 2)+5*x+6)/(x+2) + 3*x }},
	{"(x^2 - 3x + 2)^2 + x = {}", func(x float64) float64 { return pow(pow(x, 2)-3*x+2, 2) + x }},
	{"(2x^2 - x + 5)(x - 3) = {}", func(x float64) float64 { return (2*pow(x, 2) - x + 5) * (x - 3) }},
	{"(x^3 + 2x^2 - x)÷2 + 7 = {}", func(x float64) float64 { return (pow(x, 3)+2*pow(x, 2)-x)/2 + 7 }},
	{"(4x^2 - x + 2)÷(x + 2) + 3 = {}", func(x float64) float64 { return (4*pow(x, 2)-x+2)/(x+2) + 3 }},
	{"(2x^2 - 3x + 1)÷(x + 3) + 6 = {}", func(x float64) float64 { return (2*pow(x, 2)-3*x+1)/(x+3) + 6 }},
	{"(x^4 - 3x^2) + (x - 4)^2 = {}", func(x float64) float64 { return pow(x, 4) - 3*pow(x, 2) + pow(x-4, 2) }},
	{"2x + 5 = {}", func(x float64) float64 { return 2*x + 5 }},
	{"3x - 7 = {}", func(x float64) float64 { return 3*x - 7 }},
	{"x^2 + 3x - 2 = {}", func(x float64) float64 { return pow(x, 2) + 3*x - 2 }},
	{"2x^2 - 5x + 1 = {}", func(x float64) float64 { return 2*pow(x, 2) - 5*x + 1 }},
	{"x^3 + 2x - 1 = {}", func(x float64) float64 { return pow(x, 3) + 2*x - 1 }},
	{"2x^3 - x^2 + 5 = {}", func(x float64) float64 { return 2*pow(x, 3) - pow(x, 2) + 5 }},
	{"x(x + 1) = {}", func(x float64) float64 { return x * (x + 1) }},
	{"(x + 2)(x - 3) = {}", func(x float64) float64 { return (x + 2) * (x - 3) }},
	{"3(x^2 - 2x) = {}", func(x float64) float64 { return 3 * (pow(x, 2) - 2*x) }},
	{"x÷2 + 3 = {}", func(x float64) float64 { return x/2 + 3 }},
	{"(x + 1)÷3 = {}", func(x float64) float64 { return (x + 1) / 3 }},
}
