package dashboard

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var buttonLabels = []string{
	"Trade Flows by Country",
	"USD Exchange Rate",
	"Per Capita GNI Map",
	"Sectors by Decades",
	"Sectoral Spending Distribution",
}

func TestRegistry_HasExactlyFiveDashboards(t *testing.T) {
	require.Equal(t, 5, Default.Len())

	for i, d := range Default.All() {
		assert.Equal(t, buttonLabels[i], d.Name)
		byName, ok := Default.ByName(d.Name)
		require.True(t, ok)
		assert.Equal(t, d.Key, byName.Key)
	}
}

func TestRegistry_Columns(t *testing.T) {
	left, right := Default.Columns()

	var leftKeys, rightKeys []string
	for _, d := range left {
		leftKeys = append(leftKeys, d.Key)
	}
	for _, d := range right {
		rightKeys = append(rightKeys, d.Key)
	}
	assert.Equal(t, []string{"db1", "db3", "db5"}, leftKeys)
	assert.Equal(t, []string{"db2", "db4"}, rightKeys)
}

var urlPattern = regexp.MustCompile(`https?://[^'"\s]+`)

func TestEmbeds_ReferenceOnlyTableauAssets(t *testing.T) {
	seenIDs := map[string]bool{}
	for _, d := range Default.All() {
		t.Run(d.Key, func(t *testing.T) {
			urls := urlPattern.FindAllString(d.Embed, -1)
			require.NotEmpty(t, urls)
			for _, u := range urls {
				assert.True(t, strings.HasPrefix(u, TableauHost+"/"), u)
			}
			assert.Contains(t, d.Embed, tableauScript)
			assert.NotContains(t, d.Embed, "%!", "no formatting artifacts")
			assert.NotContains(t, d.Embed, "{{")

			id := regexp.MustCompile(`id='(viz\d+)'`).FindStringSubmatch(d.Embed)
			require.Len(t, id, 2)
			assert.False(t, seenIDs[id[1]], "placeholder ids are unique")
			seenIDs[id[1]] = true
			assert.Contains(t, d.Embed, "getElementById('"+id[1]+"')")
		})
	}
}

func TestEmbeds_TradeFlowsIsResponsive(t *testing.T) {
	d, ok := Default.ByKey("db1")
	require.True(t, ok)
	assert.Contains(t, d.Embed, "max-width: 2000px")
	assert.Contains(t, d.Embed, "vizElement.style.height='777px'")

	d, ok = Default.ByKey("db2")
	require.True(t, ok)
	assert.Contains(t, d.Embed, "max-width: 1200px")
	assert.NotContains(t, d.Embed, "777px")
}

func TestEmbeds_AreStable(t *testing.T) {
	d, _ := Default.ByKey("db3")
	assert.Equal(t, gniMapEmbed, d.Embed)
	assert.Equal(t, d.Embed, Default.All()[2].Embed)
}
