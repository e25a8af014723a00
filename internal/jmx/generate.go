package jmx

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/jmxforge/internal/plan"
	"github.com/specialistvlad/jmxforge/internal/validate"
)

// ValidationError is returned by Generate when the plan does not validate.
// It carries the full validation result so callers can surface every finding.
type ValidationError struct {
	Result validate.Result
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("test plan validation failed: %s", strings.Join(e.Result.Errors, "; "))
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&#34;",
)

func esc(s string) string { return xmlEscaper.Replace(s) }

// Generate renders the plan as a JMeter 5.x .jmx document. The plan is
// validated first; an invalid plan yields a *ValidationError and no output.
func Generate(p *plan.TestPlan) (string, error) {
	if res := validate.Plan(p); !res.Valid {
		return "", &ValidationError{Result: res}
	}

	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	b.WriteString("<jmeterTestPlan version=\"1.2\" properties=\"5.0\" jmeter=\"5.6.3\">\n")
	b.WriteString("  <hashTree>\n")
	writeLevel(&b, p, p.RootComponents, 2)
	b.WriteString("  </hashTree>\n")
	b.WriteString("</jmeterTestPlan>")
	return b.String(), nil
}

// writeLevel emits the element/hashTree pair for every id in order. The
// hashTree pairing is the structural backbone of the dialect, so it is kept
// in one place rather than repeated per component type.
func writeLevel(b *strings.Builder, p *plan.TestPlan, ids []string, depth int) {
	pad := strings.Repeat("  ", depth)
	for _, id := range ids {
		c, ok := p.Components[id]
		if !ok {
			continue
		}
		writeComponent(&lineWriter{b: b, depth: depth}, c)
		if len(c.Children) > 0 {
			b.WriteString(pad + "<hashTree>\n")
			writeLevel(b, p, c.Children, depth+1)
			b.WriteString(pad + "</hashTree>\n")
		} else {
			b.WriteString(pad + "<hashTree/>\n")
		}
	}
}

// lineWriter emits indented lines relative to a base depth.
type lineWriter struct {
	b     *strings.Builder
	depth int
}

func (w *lineWriter) line(extra int, format string, args ...any) {
	w.b.WriteString(strings.Repeat("  ", w.depth+extra))
	fmt.Fprintf(w.b, format, args...)
	w.b.WriteByte('\n')
}

func (w *lineWriter) open(extra int, tag, guiclass, testclass string, c *plan.Component) {
	w.line(extra, `<%s guiclass=%q testclass=%q testname="%s" enabled="%t">`,
		tag, guiclass, testclass, esc(c.Name), c.Enabled)
}

func (w *lineWriter) stringProp(extra int, name, value string) {
	w.line(extra, `<stringProp name=%q>%s</stringProp>`, name, esc(value))
}

func (w *lineWriter) boolProp(extra int, name string, value bool) {
	w.line(extra, `<boolProp name=%q>%t</boolProp>`, name, value)
}

func writeComponent(w *lineWriter, c *plan.Component) {
	switch c.Type {
	case "test_plan":
		writeTestPlan(w, c)
	case "thread_group":
		writeThreadGroup(w, c)
	case "http_request":
		writeHTTPRequest(w, c)
	case "transaction_controller":
		writeTransactionController(w, c)
	case "header_manager":
		writeHeaderManager(w, c)
	case "view_results_tree":
		writeResultCollector(w, c, "ViewResultsFullVisualizer")
	case "summary_report":
		writeResultCollector(w, c, "SummaryReport")
	default:
		// One unrecognized node must not abort generation of its siblings.
		w.line(0, "<!-- Unsupported component type: %s -->", esc(c.Type))
	}
}

func writeTestPlan(w *lineWriter, c *plan.Component) {
	w.open(0, "TestPlan", "TestPlanGui", "TestPlan", c)
	w.stringProp(1, "TestPlan.comments", c.Text("comments"))
	w.boolProp(1, "TestPlan.functional_mode", c.Bool("functional_mode"))
	w.boolProp(1, "TestPlan.tearDown_on_shutdown", c.Bool("teardown_on_shutdown"))
	w.line(1, `<elementProp name="TestPlan.user_defined_variables" elementType="Arguments">`)
	w.line(2, `<collectionProp name="Arguments.arguments"/>`)
	w.line(1, `</elementProp>`)
	w.stringProp(1, "TestPlan.serialize_threadgroups", c.Text("serialize_threadgroups"))
	w.line(0, `</TestPlan>`)
}

func writeThreadGroup(w *lineWriter, c *plan.Component) {
	w.open(0, "ThreadGroup", "ThreadGroupGui", "ThreadGroup", c)
	w.stringProp(1, "ThreadGroup.on_sample_error", c.Text("on_sample_error"))
	w.line(1, `<elementProp name="ThreadGroup.main_controller" elementType="LoopController">`)
	w.boolProp(2, "LoopController.continue_forever", c.Bool("continue_forever"))
	w.stringProp(2, "LoopController.loops", c.Text("loops"))
	w.line(1, `</elementProp>`)
	w.stringProp(1, "ThreadGroup.num_threads", c.Text("num_threads"))
	w.stringProp(1, "ThreadGroup.ramp_time", c.Text("ramp_time"))
	w.boolProp(1, "ThreadGroup.scheduler", c.Bool("scheduler"))
	w.stringProp(1, "ThreadGroup.duration", c.Text("duration"))
	w.stringProp(1, "ThreadGroup.delay", c.Text("delay"))
	w.line(0, `</ThreadGroup>`)
}

func writeHTTPRequest(w *lineWriter, c *plan.Component) {
	w.open(0, "HTTPSamplerProxy", "HttpTestSampleGui", "HTTPSamplerProxy", c)
	if body := c.Text("body"); body != "" {
		w.boolProp(1, "HTTPSampler.postBodyRaw", true)
		w.line(1, `<elementProp name="HTTPsampler.Arguments" elementType="Arguments">`)
		w.line(2, `<collectionProp name="Arguments.arguments">`)
		w.line(3, `<elementProp name="" elementType="HTTPArgument">`)
		w.boolProp(4, "HTTPArgument.always_encode", false)
		w.stringProp(4, "Argument.value", body)
		w.stringProp(4, "Argument.metadata", "=")
		w.line(3, `</elementProp>`)
		w.line(2, `</collectionProp>`)
		w.line(1, `</elementProp>`)
	} else {
		w.line(1, `<elementProp name="HTTPsampler.Arguments" elementType="Arguments">`)
		w.line(2, `<collectionProp name="Arguments.arguments"/>`)
		w.line(1, `</elementProp>`)
	}
	w.stringProp(1, "HTTPSampler.domain", c.Text("domain"))
	w.stringProp(1, "HTTPSampler.port", c.Text("port"))
	w.stringProp(1, "HTTPSampler.protocol", c.Text("protocol"))
	w.stringProp(1, "HTTPSampler.path", c.Text("path"))
	w.stringProp(1, "HTTPSampler.method", c.Text("method"))
	w.boolProp(1, "HTTPSampler.follow_redirects", c.Bool("follow_redirects"))
	w.boolProp(1, "HTTPSampler.auto_redirects", c.Bool("auto_redirects"))
	w.boolProp(1, "HTTPSampler.use_keepalive", c.Bool("use_keepalive"))
	w.boolProp(1, "HTTPSampler.DO_MULTIPART_POST", false)
	w.stringProp(1, "HTTPSampler.embedded_url_re", "")
	w.stringProp(1, "HTTPSampler.connect_timeout", c.Text("connect_timeout"))
	w.stringProp(1, "HTTPSampler.response_timeout", c.Text("response_timeout"))
	w.line(0, `</HTTPSamplerProxy>`)
}

func writeTransactionController(w *lineWriter, c *plan.Component) {
	w.open(0, "TransactionController", "TransactionControllerGui", "TransactionController", c)
	w.boolProp(1, "TransactionController.includeTimers", c.Bool("include_timers"))
	w.boolProp(1, "TransactionController.generateParentSample", c.Bool("generate_parent_sample"))
	w.line(0, `</TransactionController>`)
}

func writeHeaderManager(w *lineWriter, c *plan.Component) {
	w.open(0, "HeaderManager", "HeaderPanel", "HeaderManager", c)
	w.line(1, `<collectionProp name="HeaderManager.headers">`)
	for _, h := range c.HeaderList("headers") {
		w.line(2, `<elementProp name=%q elementType="Header">`, esc(h.Key))
		w.stringProp(3, "Header.name", h.Key)
		w.stringProp(3, "Header.value", h.Value)
		w.line(2, `</elementProp>`)
	}
	w.line(1, `</collectionProp>`)
	w.line(0, `</HeaderManager>`)
}

// saveConfigFields mirrors JMeter's SampleSaveConfiguration so generated
// files open in the tool without a schema complaint. The flag set is fixed;
// it is not modeled as component properties.
var saveConfigFields = []struct {
	tag   string
	value string
}{
	{"time", "true"}, {"latency", "true"}, {"timestamp", "true"},
	{"success", "true"}, {"label", "true"}, {"code", "true"},
	{"message", "true"}, {"threadName", "true"}, {"dataType", "true"},
	{"encoding", "false"}, {"assertions", "true"}, {"subresults", "true"},
	{"responseData", "false"}, {"samplerData", "false"}, {"xml", "false"},
	{"fieldNames", "true"}, {"responseHeaders", "false"},
	{"requestHeaders", "false"}, {"responseDataOnError", "false"},
	{"saveAssertionResultsFailureMessage", "true"},
	{"assertionsResultsToSave", "0"}, {"bytes", "true"},
	{"sentBytes", "true"}, {"url", "true"}, {"threadCounts", "true"},
	{"idleTime", "true"}, {"connectTime", "true"},
}

func writeResultCollector(w *lineWriter, c *plan.Component, guiclass string) {
	w.open(0, "ResultCollector", guiclass, "ResultCollector", c)
	w.boolProp(1, "ResultCollector.error_logging", c.Bool("error_logging"))
	w.line(1, `<objProp>`)
	w.line(2, `<name>saveConfig</name>`)
	w.line(2, `<value class="SampleSaveConfiguration">`)
	for _, f := range saveConfigFields {
		w.line(3, "<%s>%s</%s>", f.tag, f.value, f.tag)
	}
	w.line(2, `</value>`)
	w.line(1, `</objProp>`)
	w.stringProp(1, "filename", c.Text("filename"))
	w.line(0, `</ResultCollector>`)
}
