// Package sandwichjson selects the fastest available json implementation.
// Sonic is only used where it is supported, jsoniter is configured to behave
// like encoding/json so both produce identical wire payloads.
package sandwichjson

import (
	"io"
	"runtime"

	"github.com/bytedance/sonic"
	jsoniter "github.com/json-iterator/go"
)

const UseSonic = runtime.GOARCH == "amd64" && runtime.GOOS == "linux"

var (
	iterator = jsoniter.ConfigCompatibleWithStandardLibrary
	sonicAPI = sonic.ConfigStd
)

func Unmarshal(data []byte, v any) error {
	if UseSonic {
		return sonicAPI.Unmarshal(data, v)
	}

	return iterator.Unmarshal(data, v)
}

func UnmarshalReader(reader io.Reader, v any) error {
	if UseSonic {
		return sonicAPI.NewDecoder(reader).Decode(v)
	}

	return iterator.NewDecoder(reader).Decode(v)
}

func Marshal(v any) ([]byte, error) {
	if UseSonic {
		return sonicAPI.Marshal(v)
	}

	return iterator.Marshal(v)
}

func MarshalToWriter(writer io.Writer, v any) error {
	if UseSonic {
		return sonicAPI.NewEncoder(writer).Encode(v)
	}

	return iterator.NewEncoder(writer).Encode(v)
}
