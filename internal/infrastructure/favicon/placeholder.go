package favicon

import (
	"bytes"
	_ "embed"
	"sync"

	"github.com/bnema/favicache/internal/application/port"
	"github.com/bnema/favicache/internal/domain/entity"
)

//go:embed assets/empty-page.png
var emptyPagePNG []byte

// Placeholder is the icon shown for pages without a favicon.
// It is loaded once on first use and never changes afterwards.
type Placeholder struct {
	codec port.IconCodec

	once sync.Once
	icon entity.Icon
}

var _ port.PlaceholderProvider = (*Placeholder)(nil)

// NewPlaceholder creates the placeholder. The embedded image is passed
// through codec so it compares equal to icons the codec produced.
func NewPlaceholder(codec port.IconCodec) *Placeholder {
	return &Placeholder{codec: codec}
}

// Icon returns the placeholder bytes. Callers must not modify them.
func (p *Placeholder) Icon() entity.Icon {
	p.once.Do(func() {
		if p.codec != nil {
			if icon, err := p.codec.Encode(bytes.NewReader(emptyPagePNG)); err == nil {
				p.icon = icon
				return
			}
		}
		p.icon = entity.Icon(emptyPagePNG)
	})
	return p.icon
}
