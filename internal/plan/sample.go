package plan

// Sample builds the demonstration plan: a test plan with one thread group
// driving an HTTP request against httpbin, a header manager and a results
// listener. It is served by the API for first-run exploration and doubles as
// a fixture in tests.
func Sample() *TestPlan {
	p := New("Sample Test Plan")

	root, _ := NewComponent("test_plan", "Sample Test Plan")
	root.Properties["comments"] = "This is a sample test plan created for demonstration"
	_ = p.Attach(root, "")

	tg, _ := NewComponent("thread_group", "Sample Thread Group")
	tg.Properties["num_threads"] = 10
	tg.Properties["ramp_time"] = 30
	_ = p.Attach(tg, root.ID)

	req, _ := NewComponent("http_request", "Sample API Request")
	req.Properties["domain"] = "httpbin.org"
	req.Properties["path"] = "/get"
	_ = p.Attach(req, tg.ID)

	hdrs, _ := NewComponent("header_manager", "")
	hdrs.Properties["headers"] = []Header{
		{Key: "Accept", Value: "application/json"},
		{Key: "User-Agent", Value: "jmxforge/1.0"},
	}
	_ = p.Attach(hdrs, tg.ID)

	results, _ := NewComponent("view_results_tree", "")
	_ = p.Attach(results, tg.ID)

	return p
}
