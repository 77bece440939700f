package utils

import "math"

// Easing Functions (缓动函数)
//
// 缓动函数用于控制动画的速度曲线，使动画看起来更自然。
// 所有函数接受一个进度值 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
// 所有曲线满足 f(1) = 1，蓄力系统依赖该性质保证蓄满等于最大值。
//
// 参考：https://easings.net/

// EaseLinear 线性缓动（无缓动）
// 返回值 = 输入值（匀速运动）
func EaseLinear(t float64) float64 {
	return t
}

// EaseOutCubic 三次方缓出
// 特点：开始快，结束慢
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseInCubic 三次方缓入
// 特点：开始慢，结束快
// 公式：f(t) = t³
func EaseInCubic(t float64) float64 {
	return t * t * t
}

// EaseOutQuad 二次方缓出
// 特点：开始较快，结束慢（比 Cubic 更柔和）
// 公式：f(t) = 1 - (1-t)²
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// EaseInQuad 二次方缓入
// 特点：开始慢，结束较快
// 公式：f(t) = t²
func EaseInQuad(t float64) float64 {
	return t * t
}

// EasePower 幂曲线缓动
// 公式：f(t) = t^exponent
// exponent > 1 时前段慢后段快，用于转盘闪烁间隔的减速节奏
func EasePower(t, exponent float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return math.Pow(t, exponent)
}

// EasingByName 按配置名查找缓动函数
//
// 支持 linear、out-cubic、in-cubic、out-quad、in-quad；
// 空串和未知名称回退到线性
func EasingByName(name string) func(float64) float64 {
	switch name {
	case "", "linear":
		return EaseLinear
	case "out-cubic":
		return EaseOutCubic
	case "in-cubic":
		return EaseInCubic
	case "out-quad":
		return EaseOutQuad
	case "in-quad":
		return EaseInQuad
	default:
		return EaseLinear
	}
}

// Clamp01 将值限制在 [0, 1] 范围内
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Lerp 线性插值
// 在 a 和 b 之间根据 t 插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
