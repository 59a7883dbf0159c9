package kubeinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/yigit/studentrecords/internal/app/models"
)

func pod(name string, phase corev1.PodPhase) corev1.Pod {
	return corev1.Pod{
		ObjectMeta: metav1.ObjectMeta{Name: name, Namespace: "default"},
		Status:     corev1.PodStatus{Phase: phase},
	}
}

func TestApplyPods_CountsRecognizedPhases(t *testing.T) {
	info := models.NewClusterInfo()
	ApplyPods(info, []corev1.Pod{
		pod("a", corev1.PodRunning),
		pod("b", corev1.PodRunning),
		pod("c", corev1.PodPending),
		pod("d", corev1.PodFailed),
		pod("e", corev1.PodUnknown),
	})

	assert.Equal(t, 5, info.TotalPods)
	assert.Equal(t, 2, info.RunningPods)
	assert.Equal(t, 1, info.PendingPods)
	assert.Equal(t, 1, info.FailedPods)
	require.Len(t, info.Pods, 5)
	assert.Equal(t, "Unknown", info.Pods[4].Status)
}

func TestSummarizePod_OptionalFields(t *testing.T) {
	p := pod("web", "")
	got := SummarizePod(&p)
	assert.Equal(t, "Unknown", got.Status)
	assert.Nil(t, got.PodIP)
	assert.Nil(t, got.NodeName)

	p.Status.PodIP = "10.0.0.7"
	p.Spec.NodeName = "node-1"
	got = SummarizePod(&p)
	require.NotNil(t, got.PodIP)
	require.NotNil(t, got.NodeName)
	assert.Equal(t, "10.0.0.7", *got.PodIP)
	assert.Equal(t, "node-1", *got.NodeName)
}

func TestSummarizeNode_Readiness(t *testing.T) {
	tests := []struct {
		name       string
		conditions []corev1.NodeCondition
		want       models.NodeStatus
	}{
		{
			name:       "ready true",
			conditions: []corev1.NodeCondition{{Type: corev1.NodeMemoryPressure, Status: corev1.ConditionFalse}, {Type: corev1.NodeReady, Status: corev1.ConditionTrue}},
			want:       models.NodeReady,
		},
		{
			name:       "ready false",
			conditions: []corev1.NodeCondition{{Type: corev1.NodeReady, Status: corev1.ConditionFalse}},
			want:       models.NodeNotReady,
		},
		{
			name:       "ready unknown",
			conditions: []corev1.NodeCondition{{Type: corev1.NodeReady, Status: corev1.ConditionUnknown}},
			want:       models.NodeNotReady,
		},
		{
			name: "no ready condition",
			want: models.NodeNotReady,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := corev1.Node{
				ObjectMeta: metav1.ObjectMeta{Name: "node-1"},
				Status:     corev1.NodeStatus{Conditions: tt.conditions},
			}
			assert.Equal(t, tt.want, SummarizeNode(&node).Status)
		})
	}
}

func TestSummarizeNode_VersionDefaults(t *testing.T) {
	node := corev1.Node{ObjectMeta: metav1.ObjectMeta{Name: "bare"}}
	got := SummarizeNode(&node)
	assert.Equal(t, "Unknown", got.KubernetesVersion)
	assert.Equal(t, "Unknown", got.OSImage)

	node.Status.NodeInfo = corev1.NodeSystemInfo{KubeletVersion: "v1.33.3", OSImage: "Ubuntu 24.04"}
	got = SummarizeNode(&node)
	assert.Equal(t, "v1.33.3", got.KubernetesVersion)
	assert.Equal(t, "Ubuntu 24.04", got.OSImage)
}

func TestSummarizeService(t *testing.T) {
	portless := corev1.Service{ObjectMeta: metav1.ObjectMeta{Name: "headless"}, Spec: corev1.ServiceSpec{Ports: []corev1.ServicePort{}}}
	got := SummarizeService(&portless)
	assert.Equal(t, int32(0), got.Port)
	assert.Equal(t, "ClusterIP", got.Type)
	assert.Nil(t, got.ClusterIP)

	web := corev1.Service{
		ObjectMeta: metav1.ObjectMeta{Name: "webapi-service"},
		Spec: corev1.ServiceSpec{
			Type:      corev1.ServiceTypeNodePort,
			ClusterIP: "10.96.0.10",
			Ports:     []corev1.ServicePort{{Port: 80}, {Port: 443}},
		},
	}
	got = SummarizeService(&web)
	assert.Equal(t, int32(80), got.Port)
	assert.Equal(t, "NodePort", got.Type)
	require.NotNil(t, got.ClusterIP)
	assert.Equal(t, "10.96.0.10", *got.ClusterIP)
}

func TestSummarizeDeployment_NilReplicas(t *testing.T) {
	d := appsv1.Deployment{ObjectMeta: metav1.ObjectMeta{Name: "webapi"}}
	assert.Equal(t, models.DeploymentInfo{Name: "webapi"}, SummarizeDeployment(&d))

	three := int32(3)
	d.Spec.Replicas = &three
	d.Status.ReadyReplicas = 2
	assert.Equal(t, models.DeploymentInfo{Name: "webapi", Replicas: 3, ReadyReplicas: 2}, SummarizeDeployment(&d))
}
