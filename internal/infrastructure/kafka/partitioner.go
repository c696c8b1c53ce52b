package kafka

import (
	"fmt"
	"hash/crc32"
	"hash/fnv"
	"math/rand"

	"github.com/twmb/franz-go/pkg/kgo"
)

// partitionerFor maps librdkafka partitioner names onto kgo partitioners.
//
// The "_random" variants hash keyed records and stick keyless records to a
// random partition, which is what kgo.StickyKeyPartitioner does. The plain
// variants hash every record, treating a missing key as empty bytes. The
// stickiness window for keyless records is bounded by the producer linger.
func partitionerFor(name string) (kgo.Partitioner, error) {
	switch name {
	case "consistent":
		return hashAllPartitioner(crc32.ChecksumIEEE), nil
	case "consistent_random":
		return kgo.StickyKeyPartitioner(kgo.KafkaHasher(crc32.ChecksumIEEE)), nil
	case "murmur2":
		return hashAllPartitioner(murmur2), nil
	case "murmur2_random":
		// nil hasher is kgo's murmur2 default, matching the Java client.
		return kgo.StickyKeyPartitioner(nil), nil
	case "fnv1a":
		return hashAllPartitioner(fnv1a), nil
	case "fnv1a_random":
		return kgo.StickyKeyPartitioner(kgo.KafkaHasher(fnv1a)), nil
	case "random":
		return kgo.BasicConsistentPartitioner(func(string) func(*kgo.Record, int) int {
			return func(_ *kgo.Record, n int) int {
				return rand.Intn(n)
			}
		}), nil
	default:
		return nil, fmt.Errorf("unknown partitioner %q", name)
	}
}

// hashAllPartitioner partitions every record by hashing its key, keyed or
// not. A nil key hashes as empty bytes, so keyless records land on one
// stable partition instead of a random one.
func hashAllPartitioner(hash func([]byte) uint32) kgo.Partitioner {
	return kgo.BasicConsistentPartitioner(func(string) func(*kgo.Record, int) int {
		return func(r *kgo.Record, n int) int {
			return int(hash(r.Key)&0x7fffffff) % n
		}
	})
}

func fnv1a(b []byte) uint32 {
	h := fnv.New32a()
	_, _ = h.Write(b)
	return h.Sum32()
}

// murmur2 is Apache Kafka's murmur2 variant (seed 0x9747b28c), the hash
// behind the Java client's default partitioner. No Go client exports it,
// so it is implemented here against the reference.
func murmur2(b []byte) uint32 {
	const (
		seed = uint32(0x9747b28c)
		m    = uint32(0x5bd1e995)
		r    = 24
	)

	h := seed ^ uint32(len(b))
	for len(b) >= 4 {
		k := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
		k *= m
		k ^= k >> r
		k *= m
		h *= m
		h ^= k
		b = b[4:]
	}

	switch len(b) {
	case 3:
		h ^= uint32(b[2]) << 16
		fallthrough
	case 2:
		h ^= uint32(b[1]) << 8
		fallthrough
	case 1:
		h ^= uint32(b[0])
		h *= m
	}

	h ^= h >> 13
	h *= m
	h ^= h >> 15

	return h
}
