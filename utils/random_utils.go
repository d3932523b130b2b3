package utils

import (
	"crypto/rand"
	"encoding/binary"
)

// RandomInt32 生成一个安全的随机32位整数
func RandomInt32() int32 {
	var num int32
	err := binary.Read(rand.Reader, binary.BigEndian, &num)
	if err != nil {
		panic("generate random int32 failed")
	}

	return num
}

// RandomSuffix 生成上传文件名使用的随机后缀（0 ~ 999999999）
func RandomSuffix() int64 {
	n := int64(RandomInt32())
	if n < 0 {
		n = -n
	}
	return n % 1000000000
}
