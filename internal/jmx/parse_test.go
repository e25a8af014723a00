package jmx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/jmxforge/internal/plan"
)

// doc wraps component markup in the document envelope so fixtures stay
// focused on the elements under test.
func doc(inner string) string {
	return `<?xml version="1.0" encoding="UTF-8"?>
<jmeterTestPlan version="1.2" properties="5.0" jmeter="5.6.3">
  <hashTree>
` + inner + `
  </hashTree>
</jmeterTestPlan>`
}

const threadGroupFixture = `
    <TestPlan guiclass="TestPlanGui" testclass="TestPlan" testname="Fixture Plan" enabled="true">
      <stringProp name="TestPlan.comments">imported</stringProp>
      <boolProp name="TestPlan.functional_mode">false</boolProp>
    </TestPlan>
    <hashTree>
      <ThreadGroup guiclass="ThreadGroupGui" testclass="ThreadGroup" testname="Workers" enabled="true">
        <stringProp name="ThreadGroup.on_sample_error">stoptest</stringProp>
        <elementProp name="ThreadGroup.main_controller" elementType="LoopController">
          <boolProp name="LoopController.continue_forever">true</boolProp>
          <stringProp name="LoopController.loops">5</stringProp>
        </elementProp>
        <stringProp name="ThreadGroup.num_threads">50</stringProp>
        <stringProp name="ThreadGroup.ramp_time">120</stringProp>
      </ThreadGroup>
      <hashTree/>
    </hashTree>`

func TestParse(t *testing.T) {
	res, err := Parse(doc(threadGroupFixture))
	require.NoError(t, err)
	require.NotNil(t, res.Plan)
	assert.Empty(t, res.Issues)

	p := res.Plan
	assert.Equal(t, "Fixture Plan", p.Name)
	require.Len(t, p.RootComponents, 1)

	root, _ := p.Get(p.RootComponents[0])
	assert.Equal(t, "test_plan", root.Type)
	assert.Equal(t, "imported", root.Properties["comments"])
	require.Len(t, root.Children, 1)

	tg, _ := p.Get(root.Children[0])
	assert.Equal(t, "thread_group", tg.Type)
	assert.Equal(t, "Workers", tg.Name)
	assert.Equal(t, 50, tg.Properties["num_threads"])
	assert.Equal(t, 120, tg.Properties["ramp_time"])
	assert.Equal(t, 5, tg.Properties["loops"])
	assert.Equal(t, true, tg.Properties["continue_forever"])
	assert.Equal(t, "stoptest", tg.Properties["on_sample_error"])
}

func TestParseMalformedXML(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"empty input", ""},
		{"truncated document", `<jmeterTestPlan><hashTree>`},
		{"mismatched tags", `<jmeterTestPlan><hashTree></jmeterTestPlan>`},
		{"plain text", `this is not xml`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := Parse(tc.input)
			assert.Nil(t, res)
			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			assert.Contains(t, err.Error(), "invalid XML")
		})
	}
}

func TestParseMalformedNumberDefaults(t *testing.T) {
	input := doc(`
    <ThreadGroup guiclass="ThreadGroupGui" testclass="ThreadGroup" testname="Bad Count" enabled="true">
      <stringProp name="ThreadGroup.num_threads">lots</stringProp>
    </ThreadGroup>
    <hashTree/>`)

	res, err := Parse(input)
	require.NoError(t, err)

	tg, _ := res.Plan.Get(res.Plan.RootComponents[0])
	assert.Equal(t, 1, tg.Properties["num_threads"], "malformed count degrades to the default")
	require.Len(t, res.Issues, 1)
	assert.Contains(t, res.Issues[0], `"lots"`)
	assert.Contains(t, res.Issues[0], "ThreadGroup.num_threads")
}

func TestParseUnknownTestclass(t *testing.T) {
	input := doc(`
    <ThreadGroup guiclass="ThreadGroupGui" testclass="ThreadGroup" testname="Workers" enabled="true">
    </ThreadGroup>
    <hashTree>
      <kg.apc.jmeter.PerfMonCollector guiclass="PerfMonGui" testclass="PerfMonCollector" testname="Perf Metrics" enabled="true">
      </kg.apc.jmeter.PerfMonCollector>
      <hashTree/>
    </hashTree>`)

	res, err := Parse(input)
	require.NoError(t, err)

	tg, _ := res.Plan.Get(res.Plan.RootComponents[0])
	require.Len(t, tg.Children, 1)

	mystery, _ := res.Plan.Get(tg.Children[0])
	assert.Equal(t, "unknown", mystery.Type)
	assert.Equal(t, "Perf Metrics", mystery.Name)
	assert.Equal(t, "PerfMonCollector", mystery.Properties["testclass"])
	assert.Equal(t, tg.ID, mystery.Parent, "tree position survives the downgrade")

	require.Len(t, res.Issues, 1)
	assert.Contains(t, res.Issues[0], "PerfMonCollector")
}

func TestParseHTTPRequest(t *testing.T) {
	t.Run("raw body", func(t *testing.T) {
		input := doc(`
    <HTTPSamplerProxy guiclass="HttpTestSampleGui" testclass="HTTPSamplerProxy" testname="Post" enabled="true">
      <boolProp name="HTTPSampler.postBodyRaw">true</boolProp>
      <elementProp name="HTTPsampler.Arguments" elementType="Arguments">
        <collectionProp name="Arguments.arguments">
          <elementProp name="" elementType="HTTPArgument">
            <stringProp name="Argument.value">{"k": 1}</stringProp>
          </elementProp>
        </collectionProp>
      </elementProp>
      <stringProp name="HTTPSampler.domain">api.example.com</stringProp>
      <stringProp name="HTTPSampler.port">8443</stringProp>
      <stringProp name="HTTPSampler.method">POST</stringProp>
    </HTTPSamplerProxy>
    <hashTree/>`)

		res, err := Parse(input)
		require.NoError(t, err)

		req, _ := res.Plan.Get(res.Plan.RootComponents[0])
		assert.Equal(t, "http_request", req.Type)
		assert.Equal(t, `{"k": 1}`, req.Properties["body"])
		assert.Equal(t, "api.example.com", req.Properties["domain"])
		assert.Equal(t, 8443, req.Properties["port"])
		assert.Equal(t, "POST", req.Properties["method"])
	})

	t.Run("body ignored without postBodyRaw", func(t *testing.T) {
		input := doc(`
    <HTTPSamplerProxy guiclass="HttpTestSampleGui" testclass="HTTPSamplerProxy" testname="Form" enabled="true">
      <elementProp name="HTTPsampler.Arguments" elementType="Arguments">
        <collectionProp name="Arguments.arguments">
          <elementProp name="user" elementType="HTTPArgument">
            <stringProp name="Argument.value">alice</stringProp>
          </elementProp>
        </collectionProp>
      </elementProp>
    </HTTPSamplerProxy>
    <hashTree/>`)

		res, err := Parse(input)
		require.NoError(t, err)

		req, _ := res.Plan.Get(res.Plan.RootComponents[0])
		assert.Equal(t, "", req.Properties["body"])
	})

	t.Run("out-of-range port degrades to empty", func(t *testing.T) {
		input := doc(`
    <HTTPSamplerProxy guiclass="HttpTestSampleGui" testclass="HTTPSamplerProxy" testname="Odd Port" enabled="true">
      <stringProp name="HTTPSampler.domain">example.com</stringProp>
      <stringProp name="HTTPSampler.port">99999</stringProp>
    </HTTPSamplerProxy>
    <hashTree/>`)

		res, err := Parse(input)
		require.NoError(t, err)

		req, _ := res.Plan.Get(res.Plan.RootComponents[0])
		assert.Equal(t, "", req.Properties["port"])
		require.Len(t, res.Issues, 1)
		assert.Contains(t, res.Issues[0], "port")
	})
}

func TestParseHeaderManager(t *testing.T) {
	input := doc(`
    <HeaderManager guiclass="HeaderPanel" testclass="HeaderManager" testname="Headers" enabled="true">
      <collectionProp name="HeaderManager.headers">
        <elementProp name="Accept" elementType="Header">
          <stringProp name="Header.name">Accept</stringProp>
          <stringProp name="Header.value">application/json</stringProp>
        </elementProp>
        <elementProp name="" elementType="Header">
          <stringProp name="Header.name"></stringProp>
          <stringProp name="Header.value">skipped</stringProp>
        </elementProp>
      </collectionProp>
    </HeaderManager>
    <hashTree/>`)

	res, err := Parse(input)
	require.NoError(t, err)

	hdrs, _ := res.Plan.Get(res.Plan.RootComponents[0])
	assert.Equal(t, []plan.Header{{Key: "Accept", Value: "application/json"}}, hdrs.Properties["headers"])
}

func TestParseResultCollectors(t *testing.T) {
	input := doc(`
    <ResultCollector guiclass="ViewResultsFullVisualizer" testclass="ResultCollector" testname="Tree" enabled="true">
      <boolProp name="ResultCollector.error_logging">true</boolProp>
      <stringProp name="filename">out.jtl</stringProp>
    </ResultCollector>
    <hashTree/>
    <ResultCollector guiclass="SummaryReport" testclass="ResultCollector" testname="Report" enabled="true">
      <stringProp name="filename"></stringProp>
    </ResultCollector>
    <hashTree/>`)

	res, err := Parse(input)
	require.NoError(t, err)
	require.Len(t, res.Plan.RootComponents, 2)

	tree, _ := res.Plan.Get(res.Plan.RootComponents[0])
	assert.Equal(t, "view_results_tree", tree.Type)
	assert.Equal(t, true, tree.Properties["error_logging"])
	assert.Equal(t, "out.jtl", tree.Properties["filename"])

	report, _ := res.Plan.Get(res.Plan.RootComponents[1])
	assert.Equal(t, "summary_report", report.Type)
}

func TestParseAssertionsAndTimers(t *testing.T) {
	input := doc(`
    <ResponseAssertion guiclass="AssertionGui" testclass="ResponseAssertion" testname="Check 200" enabled="true">
      <collectionProp name="Asserion.test_strings">
        <stringProp name="49586">200</stringProp>
        <stringProp name="2524">OK</stringProp>
      </collectionProp>
      <stringProp name="Assertion.test_field">Assertion.response_code</stringProp>
      <boolProp name="Assertion.assume_success">false</boolProp>
    </ResponseAssertion>
    <hashTree/>
    <ConstantTimer guiclass="ConstantTimerGui" testclass="ConstantTimer" testname="Pause" enabled="true">
      <stringProp name="ConstantTimer.delay">250</stringProp>
    </ConstantTimer>
    <hashTree/>`)

	res, err := Parse(input)
	require.NoError(t, err)

	check, _ := res.Plan.Get(res.Plan.RootComponents[0])
	assert.Equal(t, "response_assertion", check.Type)
	assert.Equal(t, "Assertion.response_code", check.Properties["test_field"])
	assert.Equal(t, []string{"200", "OK"}, check.Properties["patterns"])

	pause, _ := res.Plan.Get(res.Plan.RootComponents[1])
	assert.Equal(t, "constant_timer", pause.Type)
	assert.Equal(t, 250, pause.Properties["delay"])
}

func TestParseDisabledElement(t *testing.T) {
	input := doc(`
    <ThreadGroup guiclass="ThreadGroupGui" testclass="ThreadGroup" testname="Off" enabled="false">
    </ThreadGroup>
    <hashTree/>`)

	res, err := Parse(input)
	require.NoError(t, err)

	tg, _ := res.Plan.Get(res.Plan.RootComponents[0])
	assert.False(t, tg.Enabled)
}

func TestRoundTrip(t *testing.T) {
	p := plan.New("Round Trip")
	root, err := plan.NewComponent("test_plan", "Round Trip")
	require.NoError(t, err)
	require.NoError(t, p.Attach(root, ""))

	tg, err := plan.NewComponent("thread_group", "Load")
	require.NoError(t, err)
	tg.Properties["num_threads"] = 5
	tg.Properties["ramp_time"] = 10
	require.NoError(t, p.Attach(tg, root.ID))

	req, err := plan.NewComponent("http_request", "Health")
	require.NoError(t, err)
	req.Properties["domain"] = "example.com"
	req.Properties["path"] = "/health"
	require.NoError(t, p.Attach(req, tg.ID))

	out, err := Generate(p)
	require.NoError(t, err)

	res, err := Parse(out)
	require.NoError(t, err)
	assert.Empty(t, res.Issues)

	got := res.Plan
	require.Len(t, got.RootComponents, 1)

	gotRoot, _ := got.Get(got.RootComponents[0])
	assert.Equal(t, "test_plan", gotRoot.Type)
	assert.Equal(t, "Round Trip", gotRoot.Name)
	assert.NotEqual(t, root.ID, gotRoot.ID, "parse assigns fresh ids")
	require.Len(t, gotRoot.Children, 1)

	gotTG, _ := got.Get(gotRoot.Children[0])
	assert.Equal(t, "thread_group", gotTG.Type)
	assert.Equal(t, "Load", gotTG.Name)
	assert.Equal(t, 5, gotTG.Properties["num_threads"])
	assert.Equal(t, 10, gotTG.Properties["ramp_time"])
	assert.NotEqual(t, tg.ID, gotTG.ID)
	require.Len(t, gotTG.Children, 1)

	gotReq, _ := got.Get(gotTG.Children[0])
	assert.Equal(t, "http_request", gotReq.Type)
	assert.Equal(t, "Health", gotReq.Name)
	assert.Equal(t, "example.com", gotReq.Properties["domain"])
	assert.Equal(t, "/health", gotReq.Properties["path"])
	assert.Equal(t, "GET", gotReq.Properties["method"])
	assert.Equal(t, "https", gotReq.Properties["protocol"])
	assert.Empty(t, gotReq.Children)

	// The reconstructed plan validates and regenerates identically aside
	// from ids, which never appear in the markup.
	again, err := Generate(got)
	require.NoError(t, err)
	assert.Equal(t, out, again)
}
