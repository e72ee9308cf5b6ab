package airflow

// Deep links into the Airflow web UI grid view.
// Identifiers are substituted as given, without escaping.

// DAGURL links to a DAG.
func DAGURL(base, dagID string) string {
	return base + "/dags/" + dagID + "/grid"
}

// DAGRunURL links to a DAG run.
func DAGRunURL(base, dagID, dagRunID string) string {
	return DAGURL(base, dagID) + "?dag_run_id=" + dagRunID
}

// TaskInstanceURL links to a task instance within a DAG run.
func TaskInstanceURL(base, dagID, dagRunID, taskID string) string {
	return DAGRunURL(base, dagID, dagRunID) + "&task_id=" + taskID
}
