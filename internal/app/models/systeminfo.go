package models

import "time"

// Database status values reported by the diagnostics endpoint. Probe failures
// are reported as DatabaseStatusErrorPrefix followed by the cause.
const (
	DatabaseStatusConnected    = "Connected"
	DatabaseStatusDisconnected = "Disconnected"
	DatabaseStatusErrorPrefix  = "Error: "
)

// NodeStatus is the readiness of a cluster node.
type NodeStatus string

const (
	NodeReady    NodeStatus = "Ready"
	NodeNotReady NodeStatus = "NotReady"
)

// SystemInfo is the diagnostics snapshot. It is built per request and never stored.
type SystemInfo struct {
	PodName      string `json:"podName"`
	PodNamespace string `json:"podNamespace"`
	PodIP        string `json:"podIP"`
	NodeName     string `json:"nodeName"`
	ServiceName  string `json:"serviceName"`
	ServiceHost  string `json:"serviceHost"`
	ServicePort  string `json:"servicePort"`
	HostName     string `json:"hostName"`
	Environment  string `json:"environment"`
	AppVersion   string `json:"appVersion"`
	Framework    string `json:"framework"`

	DatabaseServer  string  `json:"databaseServer"`
	DatabaseName    string  `json:"databaseName"`
	DatabaseUser    string  `json:"databaseUser"`
	DatabaseStatus  string  `json:"databaseStatus"`
	DatabaseVersion *string `json:"databaseVersion"`
	StudentCount    int64   `json:"studentCount"`
	CourseCount     int64   `json:"courseCount"`
	EnrollmentCount int64   `json:"enrollmentCount"`
	DepartmentCount int64   `json:"departmentCount"`

	ContainerName        string    `json:"containerName"`
	IsRunningInContainer bool      `json:"isRunningInContainer"`
	ServerTime           time.Time `json:"serverTime"`
	ServerTimeZone       string    `json:"serverTimeZone"`

	// ClusterInfo is nil unless the process runs inside a pod.
	ClusterInfo *ClusterInfo `json:"clusterInfo,omitempty"`
}

// ClusterInfo summarizes the workloads visible from the pod's namespace.
// Complete is false whenever any of the four list calls failed; Error carries
// the cause when the failure was not recovered.
type ClusterInfo struct {
	TotalPods        int              `json:"totalPods"`
	RunningPods      int              `json:"runningPods"`
	PendingPods      int              `json:"pendingPods"`
	FailedPods       int              `json:"failedPods"`
	TotalServices    int              `json:"totalServices"`
	TotalNodes       int              `json:"totalNodes"`
	TotalDeployments int              `json:"totalDeployments"`
	Pods             []PodInfo        `json:"pods"`
	Services         []ServiceInfo    `json:"services"`
	Nodes            []NodeInfo       `json:"nodes"`
	Deployments      []DeploymentInfo `json:"deployments"`
	Error            string           `json:"error,omitempty"`
	Complete         bool             `json:"complete"`
}

// NewClusterInfo returns a snapshot with empty, non-nil lists.
func NewClusterInfo() *ClusterInfo {
	return &ClusterInfo{
		Pods:        []PodInfo{},
		Services:    []ServiceInfo{},
		Nodes:       []NodeInfo{},
		Deployments: []DeploymentInfo{},
	}
}

type PodInfo struct {
	Name     string  `json:"name"`
	Status   string  `json:"status"`
	PodIP    *string `json:"podIP"`
	NodeName *string `json:"nodeName"`
}

type ServiceInfo struct {
	Name      string  `json:"name"`
	Type      string  `json:"type"`
	ClusterIP *string `json:"clusterIP"`
	Port      int32   `json:"port"`
}

type NodeInfo struct {
	Name              string     `json:"name"`
	Status            NodeStatus `json:"status"`
	KubernetesVersion string     `json:"kubernetesVersion"`
	OSImage           string     `json:"osImage"`
}

type DeploymentInfo struct {
	Name          string `json:"name"`
	Replicas      int32  `json:"replicas"`
	ReadyReplicas int32  `json:"readyReplicas"`
}
