/*
NAME
  collector.go

DESCRIPTION
  collector.go defines the external feature-collector interface the vif
  core emits its four per-scale scores to, and the feature names it
  reports them under.

AUTHOR
  VIF Team <vif@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package vif

// Collector is the external feature-name registration sink the
// orchestrator reports its four per-scale VIF ratios to. Acquisition,
// persistence and naming conventions beyond the four feature names
// below belong to the collector's implementation, not to the core.
type Collector interface {
	// Append records value under name for the frame identified by
	// index. A non-nil error aborts the remainder of the current
	// Extract call.
	Append(index uint64, name string, value float64) error
}

// Feature names the four per-scale scores are reported under, per
// spec.md section 6.
const (
	FeatureVIFScale0Score = "VMAF_feature_vif_scale0_integer_score"
	FeatureVIFScale1Score = "VMAF_feature_vif_scale1_integer_score"
	FeatureVIFScale2Score = "VMAF_feature_vif_scale2_integer_score"
	FeatureVIFScale3Score = "VMAF_feature_vif_scale3_integer_score"
)

// ScaleFeatureNames lists the four feature names in scale order,
// matching the order Extract computes and emits them in.
var ScaleFeatureNames = [4]string{
	FeatureVIFScale0Score,
	FeatureVIFScale1Score,
	FeatureVIFScale2Score,
	FeatureVIFScale3Score,
}
