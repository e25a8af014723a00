package catalog

// TypeUnknown is the catch-all type assigned by the JMX parser to elements
// whose testclass it does not recognize. Hand-authored plans should never
// use it.
const TypeUnknown = "unknown"

// schemas is the process-wide catalog. It is built once during package
// initialization and treated as read-only from then on.
var schemas = buildCatalog()

// ordered preserves a stable listing order for Types and ListByCategory.
var ordered = []string{
	"test_plan",
	"thread_group",
	"http_request",
	"transaction_controller",
	"header_manager",
	"csv_data_config",
	"view_results_tree",
	"summary_report",
	"response_assertion",
	"constant_timer",
	TypeUnknown,
}

// Lookup resolves a component type tag to its schema.
func Lookup(typeTag string) (*Schema, bool) {
	s, ok := schemas[typeTag]
	return s, ok
}

// ListByCategory returns the schemas whose category matches, in catalog order.
func ListByCategory(cat Category) []*Schema {
	var out []*Schema
	for _, typeTag := range ordered {
		if s := schemas[typeTag]; s.Category == cat {
			out = append(out, s)
		}
	}
	return out
}

// Types returns all catalog type tags in a stable order.
func Types() []string {
	out := make([]string, len(ordered))
	copy(out, ordered)
	return out
}

func buildCatalog() map[string]*Schema {
	all := []*Schema{
		{
			Type:        "test_plan",
			DisplayName: "Test Plan",
			Category:    CategoryRoot,
			Icon:        "📋",
			Description: "Root container for all test elements",
			Properties: []Property{
				{Name: "name", Kind: KindString, Default: "Test Plan", Required: true},
				{Name: "comments", Kind: KindTextarea, Default: ""},
				{Name: "functional_mode", Kind: KindBoolean, Default: false},
				{Name: "teardown_on_shutdown", Kind: KindBoolean, Default: true},
				{Name: "serialize_threadgroups", Kind: KindBoolean, Default: false},
			},
			AllowedChildren: []Category{CategoryThreads, CategoryConfig, CategoryListener},
		},
		{
			Type:        "thread_group",
			DisplayName: "Thread Group",
			Category:    CategoryThreads,
			Icon:        "👥",
			Description: "Defines the number of users and ramp-up period",
			Properties: []Property{
				{Name: "name", Kind: KindString, Default: "Thread Group", Required: true},
				{Name: "num_threads", Kind: KindNumber, Default: 1, Min: bound(1), Max: bound(10000)},
				{Name: "ramp_time", Kind: KindNumber, Default: 1, Min: bound(0)},
				{Name: "loops", Kind: KindNumber, Default: 1, Min: bound(-1)},
				{Name: "continue_forever", Kind: KindBoolean, Default: false},
				{Name: "on_sample_error", Kind: KindSelect, Default: "continue",
					Options: []string{"continue", "startnextloop", "stopthread", "stoptest", "stoptestnow"}},
				{Name: "scheduler", Kind: KindBoolean, Default: false},
				{Name: "duration", Kind: KindNumber, Default: 0, Min: bound(0)},
				{Name: "delay", Kind: KindNumber, Default: 0, Min: bound(0)},
			},
			AllowedChildren: []Category{
				CategorySampler, CategoryController, CategoryConfig,
				CategoryListener, CategoryTimer, CategoryAssertion,
			},
		},
		{
			Type:        "http_request",
			DisplayName: "HTTP Request",
			Category:    CategorySampler,
			Icon:        "🌐",
			Description: "Sends HTTP requests to web servers",
			Properties: []Property{
				{Name: "name", Kind: KindString, Default: "HTTP Request", Required: true},
				{Name: "domain", Kind: KindString, Default: "", Placeholder: "example.com"},
				{Name: "port", Kind: KindNumber, Default: "", Min: bound(1), Max: bound(65535)},
				{Name: "protocol", Kind: KindSelect, Default: "https", Options: []string{"http", "https"}},
				{Name: "path", Kind: KindString, Default: "/", Placeholder: "/api/endpoint"},
				{Name: "method", Kind: KindSelect, Default: "GET",
					Options: []string{"GET", "POST", "PUT", "DELETE", "PATCH", "HEAD", "OPTIONS"}},
				{Name: "follow_redirects", Kind: KindBoolean, Default: true},
				{Name: "auto_redirects", Kind: KindBoolean, Default: false},
				{Name: "use_keepalive", Kind: KindBoolean, Default: true},
				{Name: "body", Kind: KindTextarea, Default: "", Placeholder: "Request body (JSON, XML, etc.)"},
				{Name: "content_encoding", Kind: KindString, Default: ""},
				{Name: "connect_timeout", Kind: KindNumber, Default: "", Min: bound(0)},
				{Name: "response_timeout", Kind: KindNumber, Default: "", Min: bound(0)},
			},
			AllowedChildren: []Category{CategoryConfig, CategoryAssertion, CategoryTimer},
		},
		{
			Type:        "transaction_controller",
			DisplayName: "Transaction Controller",
			Category:    CategoryController,
			Icon:        "📦",
			Description: "Groups samplers into transactions",
			Properties: []Property{
				{Name: "name", Kind: KindString, Default: "Transaction Controller", Required: true},
				{Name: "include_timers", Kind: KindBoolean, Default: true},
				{Name: "generate_parent_sample", Kind: KindBoolean, Default: false},
			},
			AllowedChildren: []Category{
				CategorySampler, CategoryController, CategoryConfig,
				CategoryTimer, CategoryAssertion,
			},
		},
		{
			Type:        "header_manager",
			DisplayName: "HTTP Header Manager",
			Category:    CategoryConfig,
			Icon:        "📋",
			Description: "Manages HTTP headers for requests",
			Properties: []Property{
				{Name: "name", Kind: KindString, Default: "HTTP Header Manager", Required: true},
				{Name: "headers", Kind: KindKeyValueList, Default: nil},
			},
		},
		{
			Type:        "csv_data_config",
			DisplayName: "CSV Data Set Config",
			Category:    CategoryConfig,
			Icon:        "📊",
			Description: "Reads data from CSV files",
			Properties: []Property{
				{Name: "name", Kind: KindString, Default: "CSV Data Set Config", Required: true},
				{Name: "filename", Kind: KindString, Default: "", Required: true},
				{Name: "variable_names", Kind: KindString, Default: "", Placeholder: "var1,var2,var3"},
				{Name: "delimiter", Kind: KindString, Default: ","},
				{Name: "allow_quoted_data", Kind: KindBoolean, Default: false},
				{Name: "recycle_on_eof", Kind: KindBoolean, Default: true},
				{Name: "stop_thread_on_eof", Kind: KindBoolean, Default: false},
				{Name: "sharing_mode", Kind: KindSelect, Default: "shareMode.all",
					Options: []string{"shareMode.all", "shareMode.group", "shareMode.thread"}},
			},
		},
		{
			Type:        "view_results_tree",
			DisplayName: "View Results Tree",
			Category:    CategoryListener,
			Icon:        "🌳",
			Description: "Displays request and response data",
			Properties: []Property{
				{Name: "name", Kind: KindString, Default: "View Results Tree", Required: true},
				{Name: "filename", Kind: KindString, Default: ""},
				{Name: "error_logging", Kind: KindBoolean, Default: false},
				{Name: "success_only_logging", Kind: KindBoolean, Default: false},
			},
		},
		{
			Type:        "summary_report",
			DisplayName: "Summary Report",
			Category:    CategoryListener,
			Icon:        "📈",
			Description: "Displays summary statistics",
			Properties: []Property{
				{Name: "name", Kind: KindString, Default: "Summary Report", Required: true},
				{Name: "filename", Kind: KindString, Default: ""},
			},
		},
		{
			Type:        "response_assertion",
			DisplayName: "Response Assertion",
			Category:    CategoryAssertion,
			Icon:        "✅",
			Description: "Validates response content",
			Properties: []Property{
				{Name: "name", Kind: KindString, Default: "Response Assertion", Required: true},
				{Name: "test_field", Kind: KindSelect, Default: "Assertion.response_data",
					Options: []string{
						"Assertion.response_data", "Assertion.response_code",
						"Assertion.response_message", "Assertion.response_headers",
					}},
				{Name: "pattern_matching", Kind: KindSelect, Default: "Assertion.TEST_FIELD_CONTAINS",
					Options: []string{
						"Assertion.TEST_FIELD_CONTAINS", "Assertion.TEST_FIELD_MATCHES",
						"Assertion.TEST_FIELD_EQUALS", "Assertion.TEST_FIELD_SUBSTRING",
						"Assertion.TEST_FIELD_NOT_CONTAINS", "Assertion.TEST_FIELD_NOT_EQUALS",
					}},
				{Name: "patterns", Kind: KindStringList, Default: nil},
				{Name: "assume_success", Kind: KindBoolean, Default: false},
				{Name: "not", Kind: KindBoolean, Default: false},
			},
		},
		{
			Type:        "constant_timer",
			DisplayName: "Constant Timer",
			Category:    CategoryTimer,
			Icon:        "⏱️",
			Description: "Adds a constant delay between requests",
			Properties: []Property{
				{Name: "name", Kind: KindString, Default: "Constant Timer", Required: true},
				{Name: "delay", Kind: KindNumber, Default: 1000, Min: bound(0), Placeholder: "Delay in milliseconds"},
			},
		},
		{
			Type:        TypeUnknown,
			DisplayName: "Unknown",
			Category:    CategoryUnknown,
			Icon:        "❓",
			Description: "Placeholder for an unrecognized element",
			Properties: []Property{
				{Name: "name", Kind: KindString, Default: "Unknown"},
				{Name: "testclass", Kind: KindString, Default: ""},
			},
		},
	}

	byType := make(map[string]*Schema, len(all))
	for _, s := range all {
		byType[s.Type] = s
	}
	return byType
}
