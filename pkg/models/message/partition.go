package message

import "fmt"

const partitionCount = 5

// RedisPartition is one slice of the pending-decision work queue. Workers
// claim a partition exclusively via its owner key.
type RedisPartition int

func (r RedisPartition) ListKey() string {
	return fmt.Sprintf("Partition-%d", r)
}

func (r RedisPartition) OwnerKey() string {
	return fmt.Sprintf("Partition %d Owner", r)
}

func (r RedisPartition) LockName() string {
	return fmt.Sprintf("Partition-%d-Lock", r)
}

var RedisPartitions []RedisPartition

func init() {
	for i := 0; i < partitionCount; i++ {
		RedisPartitions = append(RedisPartitions, RedisPartition(i+1))
	}
}
