package planner

import "math/rand/v2"

// Source 随机数来源
type Source interface {
	// IntRange 返回 [lo, hi] 内的均匀随机整数
	IntRange(lo, hi int) int
	// Sample 从 [0, n) 中无放回地选出 k 个下标，按抽取顺序返回
	Sample(n, k int) []int
}

// NewSource 默认的非确定性随机源，可并发使用
func NewSource() Source {
	return globalSource{}
}

// NewSeededSource 固定种子的随机源；同一种子产生相同序列，不可并发使用
func NewSeededSource(seed uint64) Source {
	return &seededSource{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

type globalSource struct{}

func (globalSource) IntRange(lo, hi int) int { return intRange(rand.IntN, lo, hi) }
func (globalSource) Sample(n, k int) []int   { return sample(rand.IntN, n, k) }

type seededSource struct {
	r *rand.Rand
}

func (s *seededSource) IntRange(lo, hi int) int { return intRange(s.r.IntN, lo, hi) }
func (s *seededSource) Sample(n, k int) []int   { return sample(s.r.IntN, n, k) }

func intRange(intn func(int) int, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + intn(hi-lo+1)
}

// sample 部分 Fisher-Yates 洗牌
func sample(intn func(int) int, n, k int) []int {
	if n <= 0 || k <= 0 {
		return nil
	}
	if k > n {
		k = n
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + intn(n-i)
		idx[i], idx[j] = idx[j], idx[i]
	}
	return idx[:k:k]
}
