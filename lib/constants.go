package lib

type Mode uint

const (
	ModeUnknown Mode = 0
	ModeConvert Mode = 1
	ModeExtract Mode = 2
)
