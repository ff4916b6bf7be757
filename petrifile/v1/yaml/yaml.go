package yaml

import (
	"context"
	"fmt"
	"io"

	"github.com/jt05610/ptnet"
	pf "github.com/jt05610/ptnet/petrifile"
	"github.com/jt05610/ptnet/petrifile/v1"
	"gopkg.in/yaml.v3"
)

var _ pf.Service = (*Service)(nil)

type Service struct {
}

func (s *Service) Load(_ context.Context, r io.Reader) (*ptnet.Net, error) {
	var f petrifile.Petrifile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode petrifile: %w", err)
	}
	return f.Net()
}

func (s *Service) Version() pf.Version {
	return pf.V1
}
