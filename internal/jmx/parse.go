package jmx

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/specialistvlad/jmxforge/internal/catalog"
	"github.com/specialistvlad/jmxforge/internal/plan"
)

// ParseError is fatal: the input is not well-formed XML and no partial tree
// can be recovered from it.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return fmt.Sprintf("invalid XML: %v", e.Err) }
func (e *ParseError) Unwrap() error { return e.Err }

// ParseResult is the outcome of a successful parse. Issues lists every
// recoverable problem that was absorbed along the way: substituted defaults
// for malformed values and unknown-class downgrades. Issues never make the
// result unusable.
type ParseResult struct {
	Plan   *plan.TestPlan
	Issues []string
}

// Parse reconstructs a test plan from .jmx text. It is best-effort: a single
// malformed property or unrecognized element never fails the parse, only
// input that is not well-formed XML does. Component ids are freshly
// generated and are not related to any ids present in the source.
func Parse(input string) (*ParseResult, error) {
	root, err := decodeTree(strings.NewReader(input))
	if err != nil {
		return nil, &ParseError{Err: err}
	}

	ps := &parser{plan: plan.New("Imported Test Plan")}
	if ht := root.child("hashTree"); ht != nil {
		ps.walkHashTree(ht, "")
	}
	return &ParseResult{Plan: ps.plan, Issues: ps.issues}, nil
}

type parser struct {
	plan   *plan.TestPlan
	issues []string
}

func (ps *parser) issuef(format string, args ...any) {
	ps.issues = append(ps.issues, fmt.Sprintf(format, args...))
}

// walkHashTree is the positional descent at the heart of the dialect: a
// hashTree following a component carries that component's children, so the
// walk tracks the most recently extracted sibling and recurses into the next
// hashTree with its id as the parent context.
func (ps *parser) walkHashTree(ht *element, parentID string) {
	var current *plan.Component
	for _, child := range ht.children {
		if child.name == "hashTree" {
			if current != nil {
				ps.walkHashTree(child, current.ID)
			}
			continue
		}

		c := ps.extractComponent(child)
		if err := ps.plan.Attach(c, parentID); err != nil {
			// Attach only fails on id collisions, which freshly generated
			// ids rule out; treat it as a recoverable drop regardless.
			ps.issuef("dropping element <%s>: %v", child.name, err)
			continue
		}
		if parentID == "" && c.Type == "test_plan" {
			ps.plan.Name = c.Name
		}
		current = c
	}
}

// extractComponent dispatches on the element's recorded testclass. Anything
// unrecognized degrades to an "unknown" component so the structural position
// survives even when no property schema applies.
func (ps *parser) extractComponent(e *element) *plan.Component {
	testclass := e.attr("testclass", "")
	switch testclass {
	case "TestPlan":
		return ps.extractTestPlan(e)
	case "ThreadGroup":
		return ps.extractThreadGroup(e)
	case "HTTPSamplerProxy":
		return ps.extractHTTPRequest(e)
	case "TransactionController":
		return ps.extractTransactionController(e)
	case "HeaderManager":
		return ps.extractHeaderManager(e)
	case "ResultCollector":
		return ps.extractResultCollector(e)
	case "CSVDataSet":
		return ps.extractCSVDataConfig(e)
	case "ConstantTimer", "UniformRandomTimer", "GaussianRandomTimer":
		return ps.extractTimer(e)
	case "ResponseAssertion", "JSONPathAssertion", "XPathAssertion":
		return ps.extractAssertion(e)
	default:
		name := e.attr("testname", fmt.Sprintf("Unknown (%s)", testclass))
		ps.issuef("unrecognized testclass %q on <%s>, kept as unknown component", testclass, e.name)
		c := ps.newComponent(catalog.TypeUnknown, e, name)
		c.Properties["testclass"] = testclass
		return c
	}
}

// newComponent builds a schema-defaulted component and applies the element's
// shared structural attributes (testname, enabled).
func (ps *parser) newComponent(typeTag string, e *element, fallbackName string) *plan.Component {
	name := e.attr("testname", fallbackName)
	if name == "" {
		name = fallbackName
	}
	c, _ := plan.NewComponent(typeTag, name)
	c.Enabled = strings.EqualFold(e.attr("enabled", "true"), "true")
	return c
}

func (ps *parser) extractTestPlan(e *element) *plan.Component {
	c := ps.newComponent("test_plan", e, "Test Plan")
	c.Properties["comments"] = e.stringProp("TestPlan.comments", "")
	c.Properties["functional_mode"] = e.boolProp("TestPlan.functional_mode", false)
	c.Properties["teardown_on_shutdown"] = e.boolProp("TestPlan.tearDown_on_shutdown", true)
	c.Properties["serialize_threadgroups"] = e.boolProp("TestPlan.serialize_threadgroups", false)
	return c
}

func (ps *parser) extractThreadGroup(e *element) *plan.Component {
	c := ps.newComponent("thread_group", e, "Thread Group")

	loops, continueForever := 1, false
	if lc := e.find("elementProp", "elementType", "LoopController"); lc != nil {
		loops = ps.intProp(lc, "LoopController.loops", 1, c.Name)
		continueForever = lc.boolProp("LoopController.continue_forever", false)
	}

	c.Properties["num_threads"] = ps.intProp(e, "ThreadGroup.num_threads", 1, c.Name)
	c.Properties["ramp_time"] = ps.intProp(e, "ThreadGroup.ramp_time", 1, c.Name)
	c.Properties["loops"] = loops
	c.Properties["continue_forever"] = continueForever
	c.Properties["on_sample_error"] = e.stringProp("ThreadGroup.on_sample_error", "continue")
	c.Properties["scheduler"] = e.boolProp("ThreadGroup.scheduler", false)
	c.Properties["duration"] = ps.intProp(e, "ThreadGroup.duration", 0, c.Name)
	c.Properties["delay"] = ps.intProp(e, "ThreadGroup.delay", 0, c.Name)
	return c
}

func (ps *parser) extractHTTPRequest(e *element) *plan.Component {
	c := ps.newComponent("http_request", e, "HTTP Request")
	c.Properties["domain"] = e.stringProp("HTTPSampler.domain", "")
	c.Properties["port"] = ps.portProp(e, c.Name)
	c.Properties["protocol"] = e.stringProp("HTTPSampler.protocol", "https")
	c.Properties["path"] = e.stringProp("HTTPSampler.path", "/")
	c.Properties["method"] = e.stringProp("HTTPSampler.method", "GET")
	c.Properties["follow_redirects"] = e.boolProp("HTTPSampler.follow_redirects", true)
	c.Properties["auto_redirects"] = e.boolProp("HTTPSampler.auto_redirects", false)
	c.Properties["use_keepalive"] = e.boolProp("HTTPSampler.use_keepalive", true)
	c.Properties["body"] = extractHTTPBody(e)
	c.Properties["content_encoding"] = e.stringProp("HTTPSampler.contentEncoding", "")
	c.Properties["connect_timeout"] = ps.optionalIntProp(e, "HTTPSampler.connect_timeout", c.Name)
	c.Properties["response_timeout"] = ps.optionalIntProp(e, "HTTPSampler.response_timeout", c.Name)
	return c
}

func (ps *parser) extractTransactionController(e *element) *plan.Component {
	c := ps.newComponent("transaction_controller", e, "Transaction Controller")
	c.Properties["include_timers"] = e.boolProp("TransactionController.includeTimers", true)
	c.Properties["generate_parent_sample"] = e.boolProp("TransactionController.generateParentSample", false)
	return c
}

func (ps *parser) extractHeaderManager(e *element) *plan.Component {
	c := ps.newComponent("header_manager", e, "HTTP Header Manager")

	var headers []plan.Header
	if coll := e.find("collectionProp", "name", "HeaderManager.headers"); coll != nil {
		for _, h := range coll.findAll("elementProp") {
			key := h.stringProp("Header.name", "")
			if key == "" {
				continue
			}
			headers = append(headers, plan.Header{Key: key, Value: h.stringProp("Header.value", "")})
		}
	}
	c.Properties["headers"] = headers
	return c
}

func (ps *parser) extractResultCollector(e *element) *plan.Component {
	guiclass := e.attr("guiclass", "")

	if strings.Contains(guiclass, "SummaryReport") {
		c := ps.newComponent("summary_report", e, "Summary Report")
		c.Properties["filename"] = e.stringProp("filename", "")
		return c
	}

	// Every other ResultCollector visualizer falls back to the tree view.
	c := ps.newComponent("view_results_tree", e, "View Results Tree")
	c.Properties["filename"] = e.stringProp("filename", "")
	c.Properties["error_logging"] = e.boolProp("ResultCollector.error_logging", false)
	c.Properties["success_only_logging"] = e.boolProp("ResultCollector.success_only_logging", false)
	return c
}

func (ps *parser) extractCSVDataConfig(e *element) *plan.Component {
	c := ps.newComponent("csv_data_config", e, "CSV Data Set Config")
	c.Properties["filename"] = e.stringProp("filename", "")
	c.Properties["variable_names"] = e.stringProp("variableNames", "")
	c.Properties["delimiter"] = e.stringProp("delimiter", ",")
	c.Properties["allow_quoted_data"] = e.boolProp("quotedData", false)
	c.Properties["recycle_on_eof"] = e.boolProp("recycle", true)
	c.Properties["stop_thread_on_eof"] = e.boolProp("stopThread", false)
	c.Properties["sharing_mode"] = e.stringProp("shareMode", "shareMode.all")
	return c
}

func (ps *parser) extractTimer(e *element) *plan.Component {
	c := ps.newComponent("constant_timer", e, "Constant Timer")
	c.Properties["delay"] = ps.intProp(e, "ConstantTimer.delay", 1000, c.Name)
	return c
}

func (ps *parser) extractAssertion(e *element) *plan.Component {
	c := ps.newComponent("response_assertion", e, "Response Assertion")
	c.Properties["test_field"] = e.stringProp("Assertion.test_field", "Assertion.response_data")
	c.Properties["assume_success"] = e.boolProp("Assertion.assume_success", false)
	c.Properties["not"] = e.boolProp("Assertion.negate", false)

	var patterns []string
	// JMeter's own property name carries this typo.
	if coll := e.find("collectionProp", "name", "Asserion.test_strings"); coll != nil {
		for _, p := range coll.findAll("stringProp") {
			patterns = append(patterns, strings.TrimSpace(p.text))
		}
	}
	c.Properties["patterns"] = patterns
	return c
}

// intProp reads a numeric stringProp, substituting the fallback (and
// recording an issue) when the text does not parse as an integer.
func (ps *parser) intProp(e *element, name string, fallback int, owner string) int {
	raw := e.stringProp(name, "")
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		ps.issuef("%s: %s value %q is not a number, using default %d", owner, name, raw, fallback)
		return fallback
	}
	return n
}

// optionalIntProp reads a numeric field whose schema permits the empty
// string. Malformed text degrades to empty, with an issue recorded.
func (ps *parser) optionalIntProp(e *element, name, owner string) any {
	raw := e.stringProp(name, "")
	if raw == "" {
		return ""
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		ps.issuef("%s: %s value %q is not a number, leaving empty", owner, name, raw)
		return ""
	}
	return n
}

// portProp applies the port range on top of optional-int handling.
func (ps *parser) portProp(e *element, owner string) any {
	raw := e.stringProp("HTTPSampler.port", "")
	if strings.TrimSpace(raw) == "" {
		return ""
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > 65535 {
		ps.issuef("%s: port value %q is out of range, leaving empty", owner, raw)
		return ""
	}
	return n
}

// extractHTTPBody honors the generator's raw-body convention: the body is
// only present when postBodyRaw is set, as the single unnamed HTTPArgument
// value.
func extractHTTPBody(e *element) string {
	if !e.boolProp("HTTPSampler.postBodyRaw", false) {
		return ""
	}
	if arg := e.find("elementProp", "elementType", "HTTPArgument"); arg != nil {
		return arg.stringProp("Argument.value", "")
	}
	return ""
}
