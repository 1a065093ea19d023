package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "New Delhi", TitleCase("new  delhi"))
	assert.Equal(t, "Karnal", TitleCase("  KARNAL "))
	assert.Equal(t, "", TitleCase("   "))

	// Multibyte first letters keep their word intact.
	assert.Equal(t, "करनाल मंडी", TitleCase("करनाल मंडी"))
	assert.Equal(t, "Émile Zola", TitleCase("émile zola"))
}

func TestNameKey(t *testing.T) {
	assert.Equal(t, "new delhi", NameKey(" New Delhi "))
	assert.Equal(t, "karnal", NameKey("KARNAL"))
}

func TestSplitNames(t *testing.T) {
	assert.Equal(t, []string{"Wheat", "Rice", "Barley"}, SplitNames("Wheat, Rice\nBarley"))
	assert.Equal(t, []string{"Wheat"}, SplitNames(",,Wheat,\n"))
	assert.Empty(t, SplitNames("  \n , "))
}
