package storage

import (
	"io"

	"storefront/internal/domain/service"
)

// progressStep is the percentage granularity of progress callbacks.
const progressStep = 25

// progressReader reports upload progress in 25% steps. When the total is
// unknown only the final 100% is reported.
type progressReader struct {
	r          io.Reader
	key        string
	total      int64
	written    int64
	reported   int
	onProgress func(service.UploadProgress)
}

func newProgressReader(r io.Reader, key string, total int64, onProgress func(service.UploadProgress)) *progressReader {
	return &progressReader{r: r, key: key, total: total, onProgress: onProgress}
}

func (p *progressReader) Read(buf []byte) (int, error) {
	n, err := p.r.Read(buf)
	p.written += int64(n)

	if p.onProgress != nil && p.total > 0 {
		pct := int(min(p.written*100/p.total, 100))
		// Hold 100% until the object is committed.
		for next := p.reported + progressStep; next <= pct && next < 100; next += progressStep {
			p.reported = next
			p.emit(next)
		}
	}

	return n, err
}

// finish reports completion once the write is committed.
func (p *progressReader) finish() {
	if p.onProgress == nil || p.reported >= 100 {
		return
	}
	p.reported = 100
	p.emit(100)
}

func (p *progressReader) emit(pct int) {
	total := p.total
	if total <= 0 {
		total = p.written
	}

	p.onProgress(service.UploadProgress{
		Key:        p.key,
		Written:    p.written,
		Total:      total,
		Percentage: pct,
	})
}
