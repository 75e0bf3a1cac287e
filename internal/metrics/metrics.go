package metrics

const Namespace = "readings"
