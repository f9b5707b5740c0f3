// Package day4 mines advent coins: the lowest number whose MD5 hash, salted
// with a secret key, starts with a given number of hexadecimal zeroes.
package day4

import (
	"context"
	"crypto/md5"
	"errors"
	"runtime"
	"strconv"
	"strings"
	"sync"

	"github.com/go-ricrob/aoc/internal/solver"
)

const blockSize = 1 << 12 // candidates per worker and level

var numWorker = runtime.NumCPU()

var errNoKey = errors.New("no secret key")

// hasZeros reports whether the hex representation of sum starts with n
// zeroes.
func hasZeros(sum [md5.Size]byte, n int) bool {
	for i := 0; i < n/2; i++ {
		if sum[i] != 0 {
			return false
		}
	}
	return n%2 == 0 || sum[n/2]>>4 == 0
}

type miner struct {
	key   string
	zeros int
}

// search returns the first hit in [lo, hi).
func (m *miner) search(lo, hi int) (int, bool) {
	buf := []byte(m.key)
	n := len(buf)
	for i := lo; i < hi; i++ {
		buf = strconv.AppendInt(buf[:n], int64(i), 10)
		if hasZeros(md5.Sum(buf), m.zeros) {
			return i, true
		}
	}
	return 0, false
}

type level struct {
	wg   *sync.WaitGroup
	lo   int
	hits []int // per worker, 0 if none
}

func (m *miner) worker(idx int, wg *sync.WaitGroup, levelCh <-chan *level) {
	defer wg.Done()

	for level := range levelCh {
		lo := level.lo + idx*blockSize
		if hit, ok := m.search(lo, lo+blockSize); ok {
			level.hits[idx] = hit
		}
		level.wg.Done()
	}
}

// mine returns the lowest hit not below from. Every level hands one block of
// candidates to each worker; blocks are ordered by worker index, so the first
// worker reporting a hit holds the lowest one.
func (m *miner) mine(ctx context.Context, from int) (int, error) {
	workerWg := new(sync.WaitGroup)
	workerWg.Add(numWorker)
	levelChs := make([]chan *level, numWorker)
	for i := range levelChs {
		levelChs[i] = make(chan *level, 1)
		go m.worker(i, workerWg, levelChs[i])
	}
	defer func() {
		for _, levelCh := range levelChs {
			close(levelCh)
		}
		workerWg.Wait()
	}()

	for lo := from; ; lo += numWorker * blockSize {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		l := &level{wg: new(sync.WaitGroup), lo: lo, hits: make([]int, numWorker)}
		l.wg.Add(numWorker)
		for _, levelCh := range levelChs {
			levelCh <- l
		}
		l.wg.Wait()

		for _, hit := range l.hits {
			if hit != 0 {
				return hit, nil
			}
		}
	}
}

// Lowest returns the lowest positive number n for which the MD5 hash of key
// followed by n starts with zeros hexadecimal zeroes.
func Lowest(ctx context.Context, key string, zeros int) (int, error) {
	m := &miner{key: key, zeros: zeros}
	return m.mine(ctx, 1)
}

// Solve returns the lowest numbers for five and six leading zeroes.
func Solve(ctx context.Context, s string) (solver.Answers, error) {
	key := strings.TrimSpace(s)
	if key == "" {
		return nil, errNoKey
	}
	five, err := Lowest(ctx, key, 5)
	if err != nil {
		return nil, err
	}
	// a hash with six zeroes has five as well
	six, err := (&miner{key: key, zeros: 6}).mine(ctx, five)
	if err != nil {
		return nil, err
	}
	return solver.Answers{
		{Label: "The lowest number for 5 zeroes", Value: five},
		{Label: "The lowest number for 6 zeroes", Value: six},
	}, nil
}
