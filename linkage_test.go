package qbe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinkageString(t *testing.T) {
	assert.Equal(t, "", Private().String())
	assert.Equal(t, "export ", Public().String())
	assert.Equal(t, "thread ", ThreadLocal().String())
	assert.Equal(t, "export thread ", ExportedThreadLocal().String())
	assert.Equal(t, `section "data" `, PrivateWithSection("data").String())
	assert.Equal(t, `export section "data" `, PublicWithSection("data").String())
	assert.Equal(t, `thread section "custom" `, ThreadLocalWithSection("custom").String())
}

func TestLinkageSecFlags(t *testing.T) {
	l := Linkage{Section: "custom", SecFlags: "flags"}

	assert.Equal(t, `section "custom" "flags" `, l.String())

	// flags alone are not emitted
	l = Linkage{SecFlags: "flags"}

	assert.Equal(t, "", l.String())
}
