package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/pcbroute/autoroute/board"
)

// coordinateQuantum is the rounding grid spec.md §6 fixes the cache key's
// coordinates to, so two sub-problems that differ only by floating-point
// noise still hash identically.
const coordinateQuantum = 0.005

// IntraNodeSolverKey builds the stable content-hash key for an
// intra-node routing sub-problem, in the exact shape spec.md §6
// describes: rounded coordinates, sorted hyperparameters, availableZ,
// and a sorted list of net-connectivity ids.
//
// No library in the example corpus offers a stable, dependency-free
// struct hash, so this hashes a canonical string encoding with
// crypto/sha256 rather than pull in an unrelated hashing package for
// one call site.
func IntraNodeSolverKey(points []board.Point, hyperparameters map[string]float64, availableZ []int, netConnectivityIDs []string) string {
	var b strings.Builder

	b.WriteString("pts:")
	for _, p := range points {
		fmt.Fprintf(&b, "[%d,%d]", quantize(p.X), quantize(p.Y))
	}

	hpKeys := make([]string, 0, len(hyperparameters))
	for k := range hyperparameters {
		hpKeys = append(hpKeys, k)
	}
	sort.Strings(hpKeys)
	b.WriteString(";hp:")
	for _, k := range hpKeys {
		fmt.Fprintf(&b, "%s=%v,", k, hyperparameters[k])
	}

	z := append([]int(nil), availableZ...)
	sort.Ints(z)
	b.WriteString(";z:")
	for _, v := range z {
		fmt.Fprintf(&b, "%d,", v)
	}

	ids := append([]string(nil), netConnectivityIDs...)
	sort.Strings(ids)
	b.WriteString(";net:")
	for _, id := range ids {
		b.WriteString(id)
		b.WriteByte(',')
	}

	sum := sha256.Sum256([]byte(b.String()))

	return "intranode-solver:" + hex.EncodeToString(sum[:])
}

func quantize(v float64) int64 {
	return int64(math.Round(v / coordinateQuantum))
}
