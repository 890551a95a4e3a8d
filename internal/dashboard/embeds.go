package dashboard

import (
	"fmt"
	"strings"
)

// TableauHost is the only host embed blobs load assets from
const TableauHost = "https://public.tableau.com"

const tableauScript = TableauHost + "/javascripts/api/viz_v1.js"

// publishedViz identifies a workbook view on Tableau Public
type publishedViz struct {
	divID      string
	alt        string
	name       string // workbook/sheet
	imagePath  string // static/images/<xx>/<workbook>/<sheet>
	maxWidth   int
	responsive bool
}

func (v publishedViz) embed() string {
	var b strings.Builder
	fmt.Fprintf(&b, `
    <div style='border-radius: 10px; overflow: hidden; padding: 10px; background-color: #f0f0f0; margin: 0 auto; width: 95%%; max-width: %dpx;'>
        <div style='background-color: #4b3f72; color: #ffd166; padding: 8px; margin-bottom: 10px; border-radius: 8px; text-align: center; font-weight: bold; max-width: 600px; margin-left: auto; margin-right: auto;'>
            For better viewing please use the full screen button in the bottom right corner.
        </div>
        <div class='tableauPlaceholder' id='%s' style='position: relative'>
            <noscript>
                <a href='#'>
                    <img alt='%s ' src='%s/%s/1_rss.png' style='border: none' />
                </a>
            </noscript>
            <object class='tableauViz' style='display:none;'>
                <param name='host_url' value='https%%3A%%2F%%2Fpublic.tableau.com%%2F' />
                <param name='embed_code_version' value='3' />
                <param name='site_root' value='' />
                <param name='name' value='%s' />
                <param name='tabs' value='no' />
                <param name='toolbar' value='yes' />
                <param name='static_image' value='%s/%s/1.png' />
                <param name='animate_transition' value='yes' />
                <param name='display_static_image' value='yes' />
                <param name='display_spinner' value='yes' />
                <param name='display_overlay' value='yes' />
                <param name='display_count' value='yes' />
                <param name='language' value='en-US' />
            </object>
        </div>
        <script type='text/javascript'>
            var divElement = document.getElementById('%s');
            var vizElement = divElement.getElementsByTagName('object')[0];
`, v.maxWidth, v.divID, v.alt, TableauHost, v.imagePath, v.name, TableauHost, v.imagePath, v.divID)

	if v.responsive {
		b.WriteString(`            if (divElement.offsetWidth > 800) {
                vizElement.style.width='100%';
                vizElement.style.height=(divElement.offsetWidth*0.75)+'px';
            } else if (divElement.offsetWidth > 500) {
                vizElement.style.width='100%';
                vizElement.style.height=(divElement.offsetWidth*0.75)+'px';
            } else {
                vizElement.style.width='100%';
                vizElement.style.height='777px';
            }
`)
	} else {
		b.WriteString(`            vizElement.style.width='100%';
            vizElement.style.height=(divElement.offsetWidth*0.75)+'px';
`)
	}

	fmt.Fprintf(&b, `            var scriptElement = document.createElement('script');
            scriptElement.src = '%s';
            vizElement.parentNode.insertBefore(scriptElement, vizElement);
        </script>
    </div>
    `, tableauScript)
	return b.String()
}

var (
	tradeFlowsEmbed = publishedViz{
		divID:      "viz1745348885230",
		alt:        "changes by country",
		name:       "changesbycountry/changesbycountry",
		imagePath:  "static/images/ch/changesbycountry/changesbycountry",
		maxWidth:   2000,
		responsive: true,
	}.embed()

	sectoralSpendingEmbed = publishedViz{
		divID:     "viz1745348967203",
		alt:       "Sectoral Spending Distribution by Country and Year",
		name:      "SectoralSpendingDistributionbyCountryandYear/SectoralExpenditureAnalysis",
		imagePath: "static/images/Se/SectoralSpendingDistributionbyCountryandYear/SectoralExpenditureAnalysis",
		maxWidth:  1200,
	}.embed()

	gniMapEmbed = publishedViz{
		divID:     "viz1745349196215",
		alt:       "Per Capita GNI, Monitoring on the World Map",
		name:      "PerCapitaGNIMonitoringontheWorldMap/PerCapitaGNIMonitoringontheWorldMap",
		imagePath: "static/images/Pe/PerCapitaGNIMonitoringontheWorldMap/PerCapitaGNIMonitoringontheWorldMap",
		maxWidth:  1200,
	}.embed()

	sectorsByDecadesEmbed = publishedViz{
		divID:     "viz1745349238940",
		alt:       "The values of sectors by decades",
		name:      "thevaluesofsectorsbydecades/thevaluesofsectorsbydecades",
		imagePath: "static/images/th/thevaluesofsectorsbydecades/thevaluesofsectorsbydecades",
		maxWidth:  1200,
	}.embed()

	usdExchangeEmbed = publishedViz{
		divID:     "viz1745349277437",
		alt:       "According to IMF, USD exchange rate by Country",
		name:      "USDexchangerateaccordingtoIMF/USDexchangerateaccordingtoIMF",
		imagePath: "static/images/US/USDexchangerateaccordingtoIMF/USDexchangerateaccordingtoIMF",
		maxWidth:  1200,
	}.embed()
)
