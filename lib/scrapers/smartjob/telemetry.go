package smartjob

import (
	"smartjob-scraper/lib/restyutil"
	"smartjob-scraper/lib/telemetry"
)

var tracer = telemetry.Tracer("smartjob.lib.scrapers.smartjob")

// SetRestyInstrumentOutput dumps every request/response pair to the
// given output for debugging. Only active at debug log level.
func (c *Client) SetRestyInstrumentOutput(out restyutil.InstrumentOutput) {
	restyutil.InstrumentClient(c.Http, tracer, out)
}
